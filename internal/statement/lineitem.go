package statement

import (
	"strings"

	"github.com/ArthurFDLR/beancount-ce/internal/currencyutils"
	"github.com/ArthurFDLR/beancount-ce/internal/models"
)

// MatchLineItems extracts the raw debit and credit operations from a cleaned
// account section. Two passes run over the same lines, debits first, then
// credits; downstream date resolution determines chronological order, not the
// append order here.
//
// The matching is a linear scan instead of the historical backtracking
// pattern: each line is classified by its leading tokens, a record opens at a
// debit or credit head line, and continuation lines attach to it until the
// next line that starts with a date or amount token.
func MatchLineItems(section string) []models.RawOperation {
	lines := strings.Split(section, "\n")
	kinds := make([]lineKind, len(lines))
	for i, line := range lines {
		kinds[i] = classifyLine(line)
	}

	ops := matchDebits(lines, kinds)
	return append(ops, matchCredits(lines, kinds)...)
}

// continuationEnd returns the index one past the last continuation line of
// the record headed at index head.
func continuationEnd(kinds []lineKind, head int) int {
	end := head + 1
	for end < len(kinds) && !kinds[end].isRecordBoundary() {
		end++
	}
	return end
}

func matchDebits(lines []string, kinds []lineKind) []models.RawOperation {
	var ops []models.RawOperation
	for i, kind := range kinds {
		if kind != lineDebitHead {
			continue
		}

		head := lines[i]
		rest := strings.TrimSpace(head[len(dateStartRe.FindString(head)):])
		end := continuationEnd(kinds, i)

		amount, label, extraFrom, ok := resolveDebitAmount(lines, i, end, rest)
		if !ok {
			continue
		}
		if _, err := currencyutils.ParseAmount(amount); err != nil {
			// Malformed amount token: drop this single match, keep scanning.
			continue
		}

		ops = append(ops, models.RawOperation{
			DayMonth:   head[:5],
			Label:      label,
			ExtraLabel: strings.TrimSpace(strings.Join(lines[extraFrom:end], "\n")),
			ShortLabel: debitShortLabel(head),
			Amount:     amount,
			IsDebit:    true,
		})
	}
	return ops
}

// resolveDebitAmount locates the amount of a debit record headed at index
// head. The amount normally ends the head line. Two stacked lines can fool
// that rule: a plain trailing value on the head line may really be text while
// the record's amount sits at the end of the immediately following wrapped
// line, as in
//
//	19/10 INTERETS TAEG 14,40
//	VALEUR AU 18/10     4,45
//
// where the operation amount is 4,45. When the head amount is plain and the
// next line is a continuation carrying its own value date and ending in an
// amount token, the later token wins and the head keeps its full text as
// label. A dateless continuation ending in an amount-shaped token (a fee or
// mandate reference) never takes the amount over.
func resolveDebitAmount(lines []string, head, end int, rest string) (amount, label string, extraFrom int, ok bool) {
	headAmount, headHas := trailingAmount(lines[head])

	nextHas := false
	nextAmount := ""
	if head+1 < end && dateTokenRe.MatchString(lines[head+1]) {
		nextAmount, nextHas = trailingAmount(lines[head+1])
	}

	switch {
	case headHas && (!isPlainAmount(headAmount) || !nextHas):
		label = strings.TrimSpace(strings.TrimSuffix(rest, headAmount))
		return headAmount, label, head + 1, true
	case nextHas:
		return nextAmount, rest, head + 2, true
	default:
		return "", "", 0, false
	}
}

// debitShortLabel derives the short descriptive fragment of a debit head
// line: drop the leading date and trailing amount tokens and cut at the
// literal FACT marker, the invoice-reference suffix of card-debit lines.
func debitShortLabel(head string) string {
	parts := strings.Split(head, " ")
	if len(parts) < 2 {
		return ""
	}
	parts = parts[1 : len(parts)-1]

	var kept []string
	for _, w := range parts {
		if w == "FACT" {
			break
		}
		if w != "" {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

func matchCredits(lines []string, kinds []lineKind) []models.RawOperation {
	var ops []models.RawOperation
	for i, kind := range kinds {
		if kind != lineCreditHead {
			continue
		}

		m := creditHeadRe.FindStringSubmatch(lines[i])
		amount, dayMonth, label := m[1], m[2], strings.TrimSpace(m[3])
		if _, err := currencyutils.ParseAmount(amount); err != nil {
			continue
		}

		end := continuationEnd(kinds, i)
		ops = append(ops, models.RawOperation{
			DayMonth:   dayMonth,
			Label:      label,
			ExtraLabel: strings.TrimSpace(strings.Join(lines[i+1:end], "\n")),
			ShortLabel: label,
			Amount:     amount,
			IsDebit:    false,
		})
	}
	return ops
}
