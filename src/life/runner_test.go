package life

import "testing"

func runConfig(rows, cols, iters int, seed int64) RunConfig {
	return RunConfig{Rows: rows, Cols: cols, Iters: iters, Seed: seed, Workers: 4}
}

func TestRunZeroIterations(t *testing.T) {
	cfg := runConfig(10, 10, 0, 5)
	res := Run(cfg, NewSequentialEngine(0), nil)
	if !res.Final.Equal(RandomBoard(10, 10, 5)) {
		t.Error("zero-iteration run did not return the initial board")
	}
}

func TestRunMatchesManualAdvance(t *testing.T) {
	cfg := runConfig(20, 15, 3, 9)
	e := NewPartitionedEngine(cfg.Workers)
	res := Run(cfg, e, nil)

	want := RandomBoard(20, 15, 9)
	for i := 0; i < 3; i++ {
		want = e.Advance(want)
	}
	if !res.Final.Equal(want) {
		t.Error("run result differs from manually advanced board")
	}
	if res.Elapsed < 0 {
		t.Errorf("negative elapsed time %v", res.Elapsed)
	}
}

func TestRunRenderCallback(t *testing.T) {
	cfg := runConfig(8, 8, 4, 2)
	cfg.Render = true
	frames := 0
	Run(cfg, NewPoolEngine(cfg.Workers), func(Board) {
		frames++
	})
	if frames != cfg.Iters {
		t.Errorf("render called %v times, want %v", frames, cfg.Iters)
	}
}

//rendering stays off unless the flag is set, even with a callback wired
func TestRunNoRenderByDefault(t *testing.T) {
	cfg := runConfig(8, 8, 4, 2)
	frames := 0
	Run(cfg, NewSequentialEngine(0), func(Board) {
		frames++
	})
	if frames != 0 {
		t.Errorf("render called %v times with rendering disabled", frames)
	}
}

func TestRunConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*RunConfig)
		wantErr bool
	}{
		{"valid", func(*RunConfig) {}, false},
		{"zero rows", func(c *RunConfig) { c.Rows = 0 }, true},
		{"zero cols", func(c *RunConfig) { c.Cols = 0 }, true},
		{"negative iterations", func(c *RunConfig) { c.Iters = -1 }, true},
		{"negative delay", func(c *RunConfig) { c.Delay = -1 }, true},
		{"zero workers", func(c *RunConfig) { c.Workers = 0 }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunConfig
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
