package bricks

import (
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

func newTestController() (*Controller, *ManualScheduler) {
	sched := NewManualScheduler()
	return NewController(config.DefaultBricksConfig(), sched), sched
}

func TestNewController(t *testing.T) {
	c, sched := newTestController()

	if c.Status() != StatusReady {
		t.Errorf("Status() = %v, expected %v", c.Status(), StatusReady)
	}
	if c.Rows() != 4 {
		t.Errorf("Rows() = %d, expected 4", c.Rows())
	}
	if len(c.Bricks()) != 32 {
		t.Errorf("len(Bricks()) = %d, expected 32", len(c.Bricks()))
	}
	if sched.Pending() != 0 {
		t.Errorf("Pending() = %d, expected no tick before start", sched.Pending())
	}
}

func TestStartArmsOneTick(t *testing.T) {
	c, sched := newTestController()

	if !c.Start() {
		t.Fatal("Start() from Ready should succeed")
	}
	if c.Status() != StatusInProgress {
		t.Errorf("Status() = %v, expected %v", c.Status(), StatusInProgress)
	}
	if sched.Pending() != 1 {
		t.Errorf("Pending() = %d, expected 1", sched.Pending())
	}

	if c.Start() {
		t.Error("second Start() should be a no-op")
	}
	if sched.Pending() != 1 {
		t.Errorf("Pending() = %d after second start, expected 1", sched.Pending())
	}
}

func TestTickReschedules(t *testing.T) {
	c, sched := newTestController()
	c.Start()

	for i := 0; i < 5; i++ {
		if !sched.Fire() {
			t.Fatalf("no tick queued before tick %d", i+1)
		}
	}

	if c.Ticks() != 5 {
		t.Errorf("Ticks() = %d, expected 5", c.Ticks())
	}
	if sched.Pending() != 1 {
		t.Errorf("Pending() = %d, expected 1", sched.Pending())
	}
	if sched.Now() != 400*time.Millisecond {
		t.Errorf("Now() = %v, expected 400ms", sched.Now())
	}
}

func TestFullGameWithoutInput(t *testing.T) {
	c, sched := newTestController()
	c.Start()

	fired := sched.RunUntilIdle(1000)

	if fired != 43 {
		t.Errorf("fired %d ticks, expected 43", fired)
	}
	if c.Status() != StatusGameOver {
		t.Errorf("Status() = %v, expected %v", c.Status(), StatusGameOver)
	}
	if c.Score() != 50 {
		t.Errorf("Score() = %d, expected 50", c.Score())
	}
	if sched.Pending() != 0 {
		t.Errorf("Pending() = %d, expected the chain to stop", sched.Pending())
	}

	events := c.Events()
	if len(events) != 3 {
		t.Fatalf("got %d events, expected 3: %+v", len(events), events)
	}
	if _, ok := events[0].(StartedEvent); !ok {
		t.Errorf("events[0] = %T, expected StartedEvent", events[0])
	}
	destroyed, ok := events[1].(BrickDestroyedEvent)
	if !ok || destroyed.Tick != 18 || destroyed.Col != 1 || destroyed.Row != 3 {
		t.Errorf("events[1] = %+v, expected brick col 1 row 3 at tick 18", events[1])
	}
	finished, ok := events[2].(FinishedEvent)
	if !ok || finished.Status != StatusGameOver || finished.Score != 50 || finished.Ticks != 43 {
		t.Errorf("events[2] = %+v, expected game over with 50 after 43 ticks", events[2])
	}

	if len(c.Events()) != 0 {
		t.Error("Events() should drain the queue")
	}
}

func TestVictoryWithEmptyField(t *testing.T) {
	c, sched := newTestController()
	c.Initialize(0)
	c.Start()

	fired := sched.RunUntilIdle(1000)

	// The ball leaves through the top after 35 ticks
	if fired != 35 {
		t.Errorf("fired %d ticks, expected 35", fired)
	}
	if c.Status() != StatusVictory {
		t.Errorf("Status() = %v, expected %v", c.Status(), StatusVictory)
	}
}

func TestVictoryWithClearedField(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		expected Status
	}{
		{"every brick scored", 1600, StatusVictory},
		{"one brick short", 1550, StatusGameOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, sched := newTestController()
			c.Start()

			// Clear the 4-row field as if every brick had been hit.
			for i := range c.state.Bricks {
				c.state.Bricks[i].Alive = false
			}
			c.state.Score = tt.score

			fired := sched.RunUntilIdle(1000)

			if fired != 35 {
				t.Errorf("fired %d ticks, expected 35", fired)
			}
			if c.MaxScore() != 1600 {
				t.Errorf("MaxScore() = %d, expected 1600", c.MaxScore())
			}
			if c.Status() != tt.expected {
				t.Errorf("Status() = %v, expected %v", c.Status(), tt.expected)
			}
			if c.Score() != tt.score {
				t.Errorf("Score() = %d, expected %d", c.Score(), tt.score)
			}
		})
	}
}

func TestTerminalStatusIgnoresTicks(t *testing.T) {
	c, sched := newTestController()
	c.Start()
	sched.RunUntilIdle(1000)
	c.Events()

	gen := c.Generation()
	ball := c.Ball()

	if c.Tick(gen) {
		t.Error("Tick() after game over should be dropped")
	}
	if c.Ball() != ball {
		t.Error("dropped tick moved the ball")
	}
	if sched.Pending() != 0 {
		t.Errorf("dropped tick armed another: Pending() = %d", sched.Pending())
	}
}

func TestResetInvalidatesOldChain(t *testing.T) {
	c, sched := newTestController()
	c.Start()
	sched.Fire()

	oldGen := c.Generation()
	c.Reset()

	if c.Generation() == oldGen {
		t.Fatal("Reset() should start a new generation")
	}
	if c.Ticks() != 0 {
		t.Errorf("Ticks() = %d after reset, expected 0", c.Ticks())
	}
	if sched.Pending() != 2 {
		t.Fatalf("Pending() = %d, expected stale tick plus new tick", sched.Pending())
	}

	sched.Fire() // stale
	if c.Ticks() != 0 {
		t.Errorf("stale tick advanced the game: Ticks() = %d", c.Ticks())
	}
	sched.Fire()
	if c.Ticks() != 1 {
		t.Errorf("Ticks() = %d, expected 1", c.Ticks())
	}
	if sched.Pending() != 1 {
		t.Errorf("Pending() = %d, expected a single live chain", sched.Pending())
	}
}

func TestResetEmitsAbandoned(t *testing.T) {
	c, sched := newTestController()
	c.Start()
	for iter := 0; iter < 3; iter++ {
		sched.Fire()
	}
	c.Events()

	c.Reset()

	events := c.Events()
	if len(events) != 2 {
		t.Fatalf("got %d events, expected 2: %+v", len(events), events)
	}
	abandoned, ok := events[0].(AbandonedEvent)
	if !ok || abandoned.Ticks != 3 {
		t.Errorf("events[0] = %+v, expected AbandonedEvent after 3 ticks", events[0])
	}
	if _, ok := events[1].(StartedEvent); !ok {
		t.Errorf("events[1] = %T, expected StartedEvent", events[1])
	}
}

func TestResetFromTerminal(t *testing.T) {
	c, sched := newTestController()
	c.Start()
	sched.RunUntilIdle(1000)
	c.OnInput(DirectionLeft)
	c.Events()

	c.Reset()

	if c.Status() != StatusInProgress {
		t.Errorf("Status() = %v, expected %v", c.Status(), StatusInProgress)
	}
	if c.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", c.Score())
	}
	if len(c.Bricks()) != 32 {
		t.Errorf("len(Bricks()) = %d, expected 32", len(c.Bricks()))
	}
	if c.Ball().Box != core.NewBox(170, 225, 185, 240) {
		t.Errorf("Ball().Box = %+v, expected start position", c.Ball().Box)
	}
	if c.Paddle().Box != core.NewBox(165, 250, 235, 260) {
		t.Errorf("Paddle().Box = %+v, expected start position", c.Paddle().Box)
	}
	for _, e := range c.Events() {
		if _, ok := e.(AbandonedEvent); ok {
			t.Error("reset after game over should not report an abandoned run")
		}
	}
	if sched.Pending() != 1 {
		t.Errorf("Pending() = %d, expected 1", sched.Pending())
	}
}

func TestResetKeepsRowCount(t *testing.T) {
	c, _ := newTestController()
	c.Initialize(9)
	c.Reset()

	if c.Rows() != 7 {
		t.Errorf("Rows() = %d, expected 7", c.Rows())
	}
	if c.MaxScore() != 2800 {
		t.Errorf("MaxScore() = %d, expected 2800", c.MaxScore())
	}
}

func TestInputIgnoredUnlessInProgress(t *testing.T) {
	c, sched := newTestController()
	start := c.Paddle()

	if c.OnInput(DirectionLeft) {
		t.Error("OnInput() in Ready should be ignored")
	}
	if c.Paddle() != start {
		t.Error("paddle moved before start")
	}

	c.Start()
	sched.RunUntilIdle(1000)
	end := c.Paddle()

	if c.OnInput(DirectionRight) {
		t.Error("OnInput() after game over should be ignored")
	}
	if c.Paddle() != end {
		t.Error("paddle moved after game over")
	}
	for _, e := range c.Events() {
		if _, ok := e.(InputEvent); ok {
			t.Error("ignored input should not be reported")
		}
	}
}

func TestInputMovesPaddle(t *testing.T) {
	c, sched := newTestController()
	c.Start()
	sched.Fire()
	sched.Fire()
	c.Events()

	if !c.OnInput(DirectionLeft) {
		t.Fatal("OnInput(Left) should move the paddle")
	}
	if c.Paddle().Box.X0 != 150 {
		t.Errorf("Paddle().Box.X0 = %d, expected 150", c.Paddle().Box.X0)
	}

	events := c.Events()
	if len(events) != 1 {
		t.Fatalf("got %d events, expected 1", len(events))
	}
	in, ok := events[0].(InputEvent)
	if !ok || in.Tick != 2 || in.Command != core.CommandLeft {
		t.Errorf("events[0] = %+v, expected left input at tick 2", events[0])
	}
}

func TestHandleCommands(t *testing.T) {
	c, sched := newTestController()

	if c.Handle(core.CommandLeft) {
		t.Error("Handle(Left) before start should be ignored")
	}
	if !c.Handle(core.CommandStart) {
		t.Fatal("Handle(Start) should start the game")
	}
	if !c.Handle(core.CommandRight) {
		t.Error("Handle(Right) should move the paddle")
	}
	if c.Handle(core.CommandNone) {
		t.Error("Handle(None) should do nothing")
	}

	gen := c.Generation()
	if !c.Handle(core.CommandReset) {
		t.Error("Handle(Reset) should restart the game")
	}
	if c.Generation() == gen {
		t.Error("Handle(Reset) should start a new generation")
	}
	if c.Paddle().Box.X0 != 165 {
		t.Errorf("Paddle().Box.X0 = %d, expected 165 after reset", c.Paddle().Box.X0)
	}
	if sched.Pending() != 2 {
		t.Errorf("Pending() = %d, expected 2", sched.Pending())
	}
}

func TestResize(t *testing.T) {
	c, sched := newTestController()

	c.Resize(0, 100)
	c.Resize(300, -1)
	if w, h := c.PlayArea(); w != 400 || h != 270 {
		t.Errorf("PlayArea() = %dx%d, non-positive sizes should be ignored", w, h)
	}

	c.Resize(400, 200)
	if len(c.Events()) != 0 {
		t.Error("resize before start should not be reported")
	}

	c.Start()
	c.Events()
	sched.Fire()
	c.Resize(400, 300)
	c.Resize(400, 300)

	events := c.Events()
	if len(events) != 1 {
		t.Fatalf("got %d events, expected 1", len(events))
	}
	resized, ok := events[0].(ResizedEvent)
	if !ok || resized.Tick != 1 || resized.Height != 300 {
		t.Errorf("events[0] = %+v, expected resize to 300 at tick 1", events[0])
	}
}

func TestResizeChangesExit(t *testing.T) {
	c, sched := newTestController()
	c.Start()
	c.Resize(400, 300)

	fired := sched.RunUntilIdle(1000)

	// Four more ticks to fall below 300 than below 270
	if fired != 47 {
		t.Errorf("fired %d ticks, expected 47", fired)
	}
}

func TestTimerSchedulerDrivesGame(t *testing.T) {
	cfg := config.DefaultBricksConfig()
	cfg.Timing.TickDelayMS = 1

	sched := newTimerScheduler()
	defer sched.Stop()

	c := NewController(cfg, sched)
	c.Initialize(0)
	c.Start()

	deadline := time.Now().Add(5 * time.Second)
	for !c.Status().Terminal() {
		if time.Now().After(deadline) {
			t.Fatalf("game did not finish, Ticks() = %d", c.Ticks())
		}
		time.Sleep(5 * time.Millisecond)
	}

	if c.Status() != StatusVictory {
		t.Errorf("Status() = %v, expected %v", c.Status(), StatusVictory)
	}
	if c.Ticks() != 35 {
		t.Errorf("Ticks() = %d, expected 35", c.Ticks())
	}
}

func TestConcurrentInputDuringTicks(t *testing.T) {
	cfg := config.DefaultBricksConfig()
	cfg.Timing.TickDelayMS = 1

	sched := newTimerScheduler()
	defer sched.Stop()

	c := NewController(cfg, sched)
	c.Start()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			dir := DirectionLeft
			if i%2 == 0 {
				dir = DirectionRight
			}
			for iter := 0; iter < 50; iter++ {
				c.OnInput(dir)
				_ = c.Snapshot()
			}
		}()
	}
	wg.Wait()

	p := c.Paddle().Box
	if p.X0 < 0 || p.X1 > 400 {
		t.Errorf("paddle left the play area: %+v", p)
	}
}
