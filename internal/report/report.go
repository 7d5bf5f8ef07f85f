// Package report renders estimates for people and for other programs.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"wholesale_go/internal/domain"

	"github.com/dustin/go-humanize"
	"golang.org/x/term"
)

const (
	colorGreen = "\033[32m"
	colorBold  = "\033[1m"
	colorReset = "\033[0m"

	labelWidth = 31
)

// Options control the text report
type Options struct {
	Color bool // highlight the offer and profit lines with ANSI codes
}

// JSON writes the estimate as indented JSON
func JSON(w io.Writer, est domain.PropertyEstimate) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(est)
}

// Text writes a labeled-line report
func Text(w io.Writer, est domain.PropertyEstimate, opts Options) error {
	var b strings.Builder

	b.WriteString("WHOLESALE ESTIMATE\n")
	b.WriteString("---------------------------\n")
	line(&b, "After-repair value (ARV):", Money(est.ARV), "")
	line(&b, "As-is value:", Money(est.AsIsValue), "")
	line(&b, "Repair budget:", Money(est.RepairCost), "")
	line(&b, "Closing costs:", Money(est.ClosingCost), "")
	line(&b, "Holding costs:", Money(est.HoldingCost), "")
	line(&b, "Assignment fee:", Money(est.AssignmentFee), "")
	line(&b, "Maximum allowable offer (MAO):", Money(est.MaximumAllowableOffer), "")
	line(&b, "Recommended offer:", Money(est.RecommendedOffer), highlight(opts, colorBold))
	line(&b, "Projected profit:", Money(est.ProjectedProfit), highlight(opts, colorGreen))
	b.WriteString("\n")
	line(&b, "Comparable sale range:", Money(est.ComparableRange.Low)+" - "+Money(est.ComparableRange.High), "")
	line(&b, "Confidence score:", Percent(est.Confidence), "")

	_, err := io.WriteString(w, b.String())
	return err
}

func line(b *strings.Builder, label, value, color string) {
	if color != "" {
		value = color + value + colorReset
	}
	fmt.Fprintf(b, "%-*s%s\n", labelWidth, label, value)
}

func highlight(opts Options, color string) string {
	if !opts.Color {
		return ""
	}
	return color
}

// Money formats v as dollars with thousands separators and cents, e.g. $1,234.50
func Money(v float64) string {
	rounded := domain.ExactDecimal(v).RoundBank(2)
	if rounded.IsNegative() {
		return "-$" + humanize.FormatFloat("#,###.##", rounded.Neg().InexactFloat64())
	}
	return "$" + humanize.FormatFloat("#,###.##", rounded.InexactFloat64())
}

// Percent formats a 0..1 ratio as a whole percentage, e.g. 0.79 -> 79%.
// The ratio is scaled in float64 before rounding.
func Percent(v float64) string {
	return domain.ExactDecimal(v*100).RoundBank(0).String() + "%"
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
