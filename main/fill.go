package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rawbytedev/scalar/storage"
)

var fillOpts struct {
	length     int
	iterations int
	copy       bool
	memprofile string
	pprofAddr  string
}

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Run staged fill and finalize loops",
	RunE: func(cmd *cobra.Command, args []string) error {
		if fillOpts.pprofAddr != "" {
			go func() {
				storage.Logger().Info("pprof listening", zap.String("addr", fillOpts.pprofAddr))
				if err := http.ListenAndServe(fillOpts.pprofAddr, nil); err != nil {
					storage.Logger().Error("pprof server", zap.Error(err))
				}
			}()
		}
		if fillOpts.memprofile != "" {
			runtime.MemProfileRate = 1
		}

		start := time.Now()
		sum, err := runFills(fillOpts.length, fillOpts.iterations, storage.Options{
			CheckLayout:    true,
			CopyOnFinalize: fillOpts.copy,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d fills of %d elements in %s (checksum %g)\n",
			fillOpts.iterations, fillOpts.length, time.Since(start), sum)

		if fillOpts.memprofile != "" {
			return writeHeapProfile(fillOpts.memprofile)
		}
		return nil
	},
}

func init() {
	f := fillCmd.Flags()
	f.IntVar(&fillOpts.length, "len", 1024, "elements per buffer")
	f.IntVar(&fillOpts.iterations, "iterations", 10000, "number of buffers to fill")
	f.BoolVar(&fillOpts.copy, "copy", false, "copy on finalize instead of aliasing")
	f.StringVar(&fillOpts.memprofile, "memprofile", "", "write a heap profile to this file")
	f.StringVar(&fillOpts.pprofAddr, "pprof-addr", "", "serve net/http/pprof on this address")
}

// runFills writes every slot back to front and finalizes, returning the
// sum of the last buffer.
func runFills(n, iterations int, opts storage.Options) (float64, error) {
	var sum float64
	for it := 0; it < iterations; it++ {
		b, err := storage.New[float64](n, opts)
		if err != nil {
			return 0, err
		}
		for i := n - 1; i >= 0; i-- {
			if err := b.Write(i, float64(i)); err != nil {
				return 0, err
			}
		}
		out, err := b.Finalize()
		if err != nil {
			return 0, err
		}
		sum = 0
		for _, v := range out {
			sum += v
		}
	}
	return sum, nil
}

func writeHeapProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	defer f.Close()
	return pprof.WriteHeapProfile(f)
}
