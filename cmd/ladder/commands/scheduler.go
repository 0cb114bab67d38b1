package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pitchrank/ladder/internal/scheduler"
	"github.com/pitchrank/ladder/internal/scheduler/jobs"
)

// schedulerCmd represents the scheduler command
var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "Manage the ranking refresh scheduler",
	Long: `Starts the scheduler daemon or runs a registered job immediately.

Registered jobs:
  ranking_refresh - re-ranks every configured division (schedule from SCHEDULER_SPEC)

Example:
  go run ./cmd/ladder scheduler start
  go run ./cmd/ladder scheduler run ranking_refresh`,
}

var (
	schedulerStartCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the scheduler daemon",
		Long: `Starts the scheduler and blocks until interrupted.

The scheduler can be stopped with Ctrl+C.`,
		RunE: runScheduler,
	}

	schedulerRunCmd = &cobra.Command{
		Use:   "run [job_name]",
		Short: "Run a registered job immediately",
		Args:  cobra.ExactArgs(1),
		RunE:  runSchedulerJob,
	}
)

func init() {
	rootCmd.AddCommand(schedulerCmd)
	schedulerCmd.AddCommand(schedulerStartCmd)
	schedulerCmd.AddCommand(schedulerRunCmd)
}

func buildScheduler() (*scheduler.Scheduler, *deps, error) {
	d, err := setup()
	if err != nil {
		return nil, nil, err
	}

	if !d.cfg.Scheduler.Enabled {
		d.db.Close()
		return nil, nil, fmt.Errorf("scheduler is disabled; set SCHEDULER_ENABLED=true")
	}

	sched := scheduler.New(d.log)
	refresh := jobs.NewRankingRefreshJob(
		d.runner, d.divisions, d.cfg.Ranking.Concurrency, d.cfg.Scheduler.Spec, d.log,
	)
	if err := sched.AddJob(refresh); err != nil {
		d.db.Close()
		return nil, nil, err
	}

	return sched, d, nil
}

func runScheduler(cmd *cobra.Command, args []string) error {
	sched, d, err := buildScheduler()
	if err != nil {
		return err
	}
	defer d.db.Close()

	sched.Start()
	fmt.Println("Scheduler started, press Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sched.Stop()
	return nil
}

func runSchedulerJob(cmd *cobra.Command, args []string) error {
	sched, d, err := buildScheduler()
	if err != nil {
		return err
	}
	defer d.db.Close()

	jobName := args[0]
	if err := sched.RunJob(jobName); err != nil {
		return err
	}

	// RunJob is asynchronous; wait for the history entry
	fmt.Printf("Running job %s...\n", jobName)
	for {
		time.Sleep(200 * time.Millisecond)
		history, err := sched.History(jobName)
		if err != nil {
			return err
		}
		if result, ok := history.LastResult(); ok {
			if !result.Success {
				return fmt.Errorf("job %s failed: %s", jobName, result.Error)
			}
			fmt.Printf("Job %s completed in %s\n", jobName, result.Duration)
			return nil
		}
	}
}
