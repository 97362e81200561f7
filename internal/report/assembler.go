package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jcamargo/pronosbot/internal/pkg/localtime"
	"github.com/jcamargo/pronosbot/internal/pkg/models"
)

var sectionHeaders = map[models.Category]string{
	models.Football: "⚽ Partidos importantes de fútbol:",
	models.Tennis:   "🎾 Partidos de tenis (Top 10):",
	models.MMA:      "🥋 UFC hoy:",
}

// Assemble renders the report text. Section order is fixed
// (football, tennis, mma) no matter how the pipeline filled the map.
// A missing probability distribution is always shown as "no
// disponibles" rather than dropped, so it cannot read as a
// zero-probability claim.
func Assemble(sections map[models.Category][]models.MatchRecord, now time.Time) string {
	var b strings.Builder

	b.WriteString("📊 *Reporte Deportivo*\n")
	fmt.Fprintf(&b, "🕒 Fecha/Hora Colombia: %s\n", localtime.ToBogota(now).Format("2006-01-02 15:04:05"))

	for _, category := range models.AllCategories() {
		b.WriteString("\n")
		b.WriteString(sectionHeaders[category])
		b.WriteString("\n")

		records := sections[category]
		if len(records) == 0 {
			b.WriteString("• Sin eventos destacados hoy.\n")
			continue
		}
		for _, r := range records {
			writeRecord(&b, r)
		}
	}

	return b.String()
}

func writeRecord(b *strings.Builder, r models.MatchRecord) {
	fmt.Fprintf(b, "• %s vs %s — %s", r.Home, r.Away, localtime.Format(r.KickoffLocal))
	if r.Competition != "" {
		fmt.Fprintf(b, " (%s)", r.Competition)
	}
	b.WriteString("\n")
	if len(r.Probs) == 0 {
		b.WriteString("  Probabilidades no disponibles\n")
		return
	}
	fmt.Fprintf(b, "  Probabilidades: %s\n", formatProbs(r.Probs))
}

// formatProbs renders outcomes most-likely first; ties break by name
// so output stays deterministic.
func formatProbs(probs models.Probabilities) string {
	names := make([]string, 0, len(probs))
	for name := range probs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if probs[names[i]] != probs[names[j]] {
			return probs[names[i]] > probs[names[j]]
		}
		return names[i] < names[j]
	})

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s %.1f%%", name, probs[name]))
	}
	return strings.Join(parts, " | ")
}
