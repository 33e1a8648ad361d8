package tui

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// enPrinter groups digits the way the source publications do (42,000).
var enPrinter = message.NewPrinter(language.English)

// formatMoney renders an amount held in KSh millions.
func formatMoney(millions float64) string {
	return enPrinter.Sprintf("KSh %.0fM", millions)
}

// formatPerCapita renders a plain KSh amount.
func formatPerCapita(v float64) string {
	return enPrinter.Sprintf("KSh %.0f", v)
}

func formatCount(n int64) string {
	return enPrinter.Sprintf("%d", n)
}

func formatPercent(frac float64) string {
	return fmt.Sprintf("%.1f%%", frac*100)
}
