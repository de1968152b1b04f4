package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rawbytedev/scalar"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print element and carrier layouts for the builtin element types",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLayouts(cmd.OutOrStdout())
	},
}

type layoutRow struct {
	elem, carrier scalar.Info
	compatible    bool
}

func rowFor[S scalar.Scalar]() layoutRow {
	return layoutRow{
		elem:       scalar.Describe[S](),
		carrier:    scalar.Describe[scalar.Uninit[S]](),
		compatible: scalar.LayoutCompatible[S](),
	}
}

func builtinRows() []layoutRow {
	return []layoutRow{
		rowFor[bool](),
		rowFor[int8](),
		rowFor[int16](),
		rowFor[int32](),
		rowFor[int64](),
		rowFor[int](),
		rowFor[uint8](),
		rowFor[uint16](),
		rowFor[uint32](),
		rowFor[uint64](),
		rowFor[uint](),
		rowFor[float32](),
		rowFor[float64](),
		rowFor[complex64](),
		rowFor[complex128](),
	}
}

func printLayouts(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tKIND\tSIZE\tALIGN\tWIDTH\tCARRIER\tCOMPATIBLE")
	for _, r := range builtinRows() {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\t%t\n",
			r.elem.Type, r.elem.Kind, r.elem.Size, r.elem.Align, r.elem.Width,
			r.carrier.Type, r.compatible)
	}
	return tw.Flush()
}
