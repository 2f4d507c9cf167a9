package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/tetris"
)

// ChaosSystem queues a random action on a fraction of frames.
type ChaosSystem struct {
	Rand        *rand.Rand
	Probability float64
}

func (c *ChaosSystem) Execute(frame *engine.UpdateFrame) {
	if c.Rand.Float64() >= c.Probability {
		return
	}
	actions := tetris.Actions()
	frame.Commands.Push(actions[c.Rand.IntN(len(actions))])
}

// newChaosRand returns the action generator for a session. Its stream has the
// top bit set and never equals the session's spawn stream.
func newChaosRand(seed, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, chaosStream(stream)))
}

func chaosStream(stream uint64) uint64 {
	return stream | 1<<63
}

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file.")
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	sessionCount := flag.Int("sessions", 1000, "The number of independent sessions to drive.")
	actionRate := flag.Float64("action-rate", 0.5, "Probability that a session receives a random action each frame.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Println("Starting blockfall stress test...")

	// 1. Build one scheduler per session
	log.Printf("Creating %d sessions...\n", *sessionCount)
	chaosSeed := cfg.Seed
	if chaosSeed == 0 {
		chaosSeed = rand.Uint64()
	}
	schedulers := make([]*engine.Scheduler, *sessionCount)
	for i := range schedulers {
		stream := uint64(i) + 1
		session := tetris.NewSession(cfg.SessionOptions(stream, log.Default())...)
		scheduler := engine.NewScheduler(session)
		scheduler.Register(&engine.GravitySystem{
			Interval:         cfg.Timing.Fall,
			SoftDropInterval: cfg.Timing.SoftDrop,
		})
		scheduler.Register(&ChaosSystem{
			Rand:        newChaosRand(chaosSeed, stream),
			Probability: *actionRate,
		})
		schedulers[i] = scheduler
	}
	log.Println("Sessions ready.")

	// 2. Run the simulation loop
	report := &Report{
		Duration:       *duration,
		Sessions:       *sessionCount,
		ActionRate:     *actionRate,
		Seed:           cfg.Seed,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			dt := float64(deltaTime) / float64(time.Second)
			for _, scheduler := range schedulers {
				scheduler.Once(dt)
			}
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	for _, scheduler := range schedulers {
		report.AddSession(scheduler.Session().Stats())
	}
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 3. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
