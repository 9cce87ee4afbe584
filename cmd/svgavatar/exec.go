package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/esimov/svgavatar"
	"github.com/esimov/svgavatar/utils"
	"golang.org/x/term"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// Ops holds the options of the avatar generation.
type Ops struct {
	PipeName string
	Workers  int
	Stdout   *os.File
}

// result holds the relevant information about a generated avatar.
type result struct {
	path string
	err  error
}

// Execute generates the avatars of the manifest concurrently and returns
// the number of avatars which could not be written.
func (op *Ops) Execute(m *Manifest) (int, error) {
	var (
		wg     sync.WaitGroup
		failed int
	)

	defaultMsg := fmt.Sprintf("%s %s",
		utils.DecorateText("◎ SVGAVATAR", utils.StatusMessage),
		utils.DecorateText(fmt.Sprintf("⇢ generating %d avatars...", len(m.Avatars)), utils.DefaultMessage),
	)
	spinner := utils.NewSpinner(defaultMsg, time.Millisecond*80, true)

	if err := os.MkdirAll(m.Dir, 0755); err != nil {
		return 0, fmt.Errorf("unable to create the destination directory: %w", err)
	}

	ch := make(chan result)
	done := make(chan interface{})
	defer close(done)

	// Capture CTRL-C signal and restores back the cursor visibility.
	handleInterrupt(done, spinner.RestoreCursor)

	workers := utils.Clamp(op.Workers, 1, maxWorkers)

	entries := feedEntries(done, m.Avatars)

	spinner.Start()
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			op.consumer(ch, done, entries)
		}()
	}

	// Close the channel after the values are consumed.
	go func() {
		defer close(ch)
		wg.Wait()
	}()

	var results []result
	for res := range ch {
		if res.err != nil {
			failed++
		}
		results = append(results, res)
	}

	if failed > 0 {
		spinner.StopMsg = fmt.Sprintf("%s %s %s\n",
			utils.DecorateText("◎ SVGAVATAR", utils.StatusMessage),
			utils.DecorateText(fmt.Sprintf("%d of %d avatars failed", failed, len(m.Avatars)), utils.DefaultMessage),
			utils.DecorateText("✘", utils.ErrorMessage),
		)
	} else {
		spinner.StopMsg = fmt.Sprintf("%s %s %s\n",
			utils.DecorateText("◎ SVGAVATAR", utils.StatusMessage),
			utils.DecorateText("⇢", utils.DefaultMessage),
			utils.DecorateText("the avatars have been generated successfully ✔", utils.SuccessMessage),
		)
	}
	spinner.Stop()

	for _, res := range results {
		op.printOpStatus(res.path, res.err)
	}
	return failed, nil
}

// handleInterrupt calls restore and exits on SIGINT or SIGTERM. It stops
// listening once done is closed; the returned channel is closed afterwards.
func handleInterrupt(done <-chan interface{}, restore func()) <-chan struct{} {
	exited := make(chan struct{})
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer close(exited)
		defer signal.Stop(signalChan)

		select {
		case <-signalChan:
			restore()
			os.Exit(1)
		case <-done:
		}
	}()
	return exited
}

// consumer reads the manifest entries from the entries channel and generates the avatars.
func (op *Ops) consumer(
	res chan<- result,
	done <-chan interface{},
	entries <-chan Entry,
) {
	for e := range entries {
		err := op.process(e)

		select {
		case <-done:
			return
		case res <- result{
			path: e.Out,
			err:  err,
		}:
		}
	}
}

// process builds the avatar of the entry and writes it to its destination.
// The output format is chosen by the destination extension.
func (op *Ops) process(e Entry) error {
	avatar := svgavatar.NewBuilder().
		Identifier(e.ID).
		Rings(e.Rings).
		StrokeColor(e.Stroke).
		Build()

	if e.Out == op.PipeName {
		stdout := op.Stdout
		if stdout == nil {
			stdout = os.Stdout
		}
		if term.IsTerminal(int(stdout.Fd())) {
			return errors.New("`-` should be used with a pipe for stdout")
		}
		_, err := avatar.WriteTo(stdout)
		return err
	}

	switch filepath.Ext(e.Out) {
	case ".ivg":
		data, err := avatar.IconVG()
		if err != nil {
			return err
		}
		return os.WriteFile(e.Out, data, 0644)
	case ".svg":
		return avatar.Save(e.Out)
	default:
		return fmt.Errorf("%q file type not supported", filepath.Ext(e.Out))
	}
}

// printOpStatus displays the relevant information about the generated avatar.
func (op *Ops) printOpStatus(fname string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n",
			utils.DecorateText("Error generating the avatar:", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("%s\n\tReason: %v", fname, err), utils.DefaultMessage),
		)
		return
	}
	if fname != op.PipeName {
		fmt.Fprintf(os.Stderr, "The avatar has been saved as: %s\n",
			utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
		)
	}
}

// feedEntries starts a new goroutine which sends the manifest entries to a new channel.
// It finishes in case the done channel is getting closed.
func feedEntries(done <-chan interface{}, avatars []Entry) <-chan Entry {
	entries := make(chan Entry)

	go func() {
		defer close(entries)
		for _, e := range avatars {
			select {
			case <-done:
				return
			case entries <- e:
			}
		}
	}()
	return entries
}
