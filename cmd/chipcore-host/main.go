// Command chipcore-host is a terminal demo host for the chipcore
// simulation: it renders the Field and its entities with tcell and plays
// a short tone through beep whenever the core emits a SoundFx event. The
// core itself does no I/O; every side effect here lives outside the
// simulation boundary (spec.md §5, §10).
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/chipcore"
)

const sampleRate = beep.SampleRate(44100)

func main() {
	levelPath := flag.String("level", "", "path to a level JSON file (required)")
	replayPath := flag.String("replay", "", "path to a recorded input stream to play back instead of reading the keyboard")
	seed := flag.Uint64("seed", 1, "RNG seed used to parse the level; a -replay file holds raw input bytes only and does not override it")
	tickMs := flag.Int("tick-ms", 110, "milliseconds per simulation tick")
	debug := flag.Bool("debug", false, "log to chipcore-host.log instead of discarding log output")
	flag.Parse()

	if !*debug {
		log.SetOutput(io.Discard)
	} else if f, err := os.OpenFile("chipcore-host.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	if *levelPath == "" {
		fmt.Fprintln(os.Stderr, "usage: chipcore-host -level path/to/level.json")
		flag.PrintDefaults()
		os.Exit(1)
	}

	dto, err := loadLevel(*levelPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load level:", err)
		os.Exit(1)
	}

	var inputs []byte
	if *replayPath != "" {
		inputs, err = os.ReadFile(*replayPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "load replay:", err)
			os.Exit(1)
		}
	}

	gs, err := chipcore.Parse(dto, *seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, "parse level:", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "create screen:", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "init screen:", err)
		os.Exit(1)
	}
	defer screen.Fini()

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		log.Printf("audio disabled: %v", err)
	}

	h := &host{
		gs:     gs,
		screen: screen,
		inputs: inputs,
	}
	h.run(time.Duration(*tickMs) * time.Millisecond)
}

func loadLevel(path string) (chipcore.LevelDTO, error) {
	var dto chipcore.LevelDTO
	data, err := os.ReadFile(path)
	if err != nil {
		return dto, err
	}
	if err := json.Unmarshal(data, &dto); err != nil {
		return dto, fmt.Errorf("decode level json: %w", err)
	}
	return dto, nil
}

// host owns the render/input/audio loop around a GameState. It holds no
// simulation state of its own — everything it reads comes from gs.
type host struct {
	gs      *chipcore.GameState
	screen  tcell.Screen
	inputs  []byte
	tickIdx int

	live      chipcore.Input
	quit      bool
}

func (h *host) run(tick time.Duration) {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for !h.quit {
		select {
		case ev := <-events:
			h.handleEvent(ev)
		case <-ticker.C:
			h.step()
			h.render()
			if h.gs.IsGameOver() {
				h.quit = true
			}
		}
	}
}

func (h *host) handleEvent(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		h.quit = true
	case tcell.KeyUp:
		h.live.Bits |= chipcore.InputUp
	case tcell.KeyDown:
		h.live.Bits |= chipcore.InputDown
	case tcell.KeyLeft:
		h.live.Bits |= chipcore.InputLeft
	case tcell.KeyRight:
		h.live.Bits |= chipcore.InputRight
	}
	if key.Rune() == 'q' {
		h.quit = true
	}
}

func (h *host) step() {
	var in chipcore.Input
	if h.inputs != nil {
		if h.tickIdx >= len(h.inputs) {
			h.quit = true
			return
		}
		in = chipcore.DecodeInput(h.inputs[h.tickIdx])
		h.tickIdx++
	} else {
		in = h.live
		h.live = chipcore.Input{} // edges consumed; held keys are re-set by the terminal's key-repeat
	}

	h.gs.Tick(in)
	for _, ev := range h.gs.TakeEvents() {
		h.handleGameEvent(ev)
	}
}

func (h *host) handleGameEvent(ev chipcore.GameEvent) {
	switch ev.Type {
	case chipcore.EventSoundFx:
		h.playTone(880)
	case chipcore.EventBombExplode:
		h.playTone(110)
	case chipcore.EventItemPickup:
		h.playTone(1320)
	case chipcore.EventGameWin:
		h.playTone(1760)
	case chipcore.EventGameOver:
		h.playTone(220)
	}
}

func (h *host) playTone(freq float64) {
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		log.Printf("tone generation failed: %v", err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(80*time.Millisecond), tone))
}

var terrainGlyphs = map[chipcore.Terrain]rune{
	chipcore.Blank: ' ',
	chipcore.Floor: '.',
	chipcore.Wall:  '#',
	chipcore.Water: '~',
	chipcore.Fire:  '^',
	chipcore.Dirt:  ':',
	chipcore.Gravel: ',',
	chipcore.Ice:   '/',
	chipcore.Exit:  'X',
	chipcore.Socket: '$',
	chipcore.CloneMachine: 'C',
	chipcore.Teleport: 'T',
	chipcore.BearTrap: 'O',
}

var entityGlyphs = map[chipcore.EntityKind]rune{
	chipcore.KindPlayer: '@',
	chipcore.KindBlock:  'B',
	chipcore.KindIceBlock: 'b',
	chipcore.KindChip:   '*',
	chipcore.KindBug:    'u',
	chipcore.KindFireBall: 'f',
	chipcore.KindPinkBall: 'p',
	chipcore.KindTank:   'n',
	chipcore.KindGlider: 'g',
	chipcore.KindTeeth:  't',
	chipcore.KindWalker: 'w',
	chipcore.KindBlob:   'o',
	chipcore.KindParamecium: 'm',
}

func (h *host) render() {
	h.screen.Clear()
	field := h.gs.Field

	for y := 0; y < field.Height; y++ {
		for x := 0; x < field.Width; x++ {
			pos := chipcore.Vec2i{X: x, Y: y}
			g, ok := terrainGlyphs[field.At(pos)]
			if !ok {
				g = '?'
			}
			h.screen.SetContent(x, y, g, nil, tcell.StyleDefault)
		}
	}

	h.gs.Store.Iterate(func(handle chipcore.EntityHandle) {
		e, ok := h.gs.Store.Get(handle)
		if !ok {
			return
		}
		g, ok := entityGlyphs[e.Kind]
		if !ok {
			return
		}
		h.screen.SetContent(e.Pos.X, e.Pos.Y, g, nil, tcell.StyleDefault.Bold(true))
	})

	status := fmt.Sprintf("chips %d/%d  keys %v  t=%d", h.gs.PS.Chips, field.RequiredChips, h.gs.PS.Keys, h.gs.Time)
	for i, r := range status {
		h.screen.SetContent(i, field.Height, r, nil, tcell.StyleDefault)
	}

	h.screen.Show()
}
