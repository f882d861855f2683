package statement

import (
	"regexp"
	"strings"

	"github.com/ArthurFDLR/beancount-ce/internal/parsererror"
)

// Owner header probes, in the order the statement revisions introduced them.
// Statements prior to March 2019 label the owner with an explicit client
// identifier; later revisions render a standalone title line instead.
var ownerProbes = []*regexp.Regexp{
	regexp.MustCompile(`Identifiant client\s+(\D*)`),
	regexp.MustCompile(`(?m)^(?:MR|MME|MLLE)\s+(\D*?)$`),
}

var nonDigitRe = regexp.MustCompile(`\D`)

// Account is one account header discovered in a statement.
type Account struct {
	// Header is the full header line, used to partition the statement and
	// to flag boilerplate inside the account's own section.
	Header string
	// Number is the account token with all non-digit characters stripped.
	Number string
}

// AccountSection is the slice of statement text owned by one account.
type AccountSection struct {
	Account Account
	// Body runs from the account's header line to the next header already
	// consumed, or to the end of the document.
	Body string
}

// FindAccounts locates the statement owner and every account header line of
// the form "<TITLE> <OWNER> - ... - <ACCOUNT_TOKEN>". Each owner probe is
// tried in order; the first probe whose owner yields at least one account
// header wins. A statement where no probe matches an owner cannot be
// segmented, which is fatal for the whole extraction.
func FindAccounts(text string) ([]Account, error) {
	ownerFound := false
	for _, probe := range ownerProbes {
		m := probe.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		ownerFound = true

		owner := strings.TrimSpace(m[1])
		accounts := findAccountHeaders(text, owner)
		if len(accounts) > 0 {
			return accounts, nil
		}
	}

	if !ownerFound {
		return nil, &parsererror.OwnerNotFoundError{}
	}
	return nil, nil
}

func findAccountHeaders(text, owner string) []Account {
	headerRe := regexp.MustCompile(`(?m)^((?:MR|MME|MLLE) ` + regexp.QuoteMeta(owner) + ` - .* - ([^(\n]*))$`)

	var accounts []Account
	for _, m := range headerRe.FindAllStringSubmatch(text, -1) {
		accounts = append(accounts, Account{
			Header: m[1],
			Number: nonDigitRe.ReplaceAllString(m[2], ""),
		})
	}
	return accounts
}

// Sections partitions the statement text into per-account sections for the
// accounts selected by the match predicate. Headers are processed in reverse
// discovery order: sections appear last-first in the source document, and
// excising each matched section before locating the next keeps overlapping
// boilerplate out of earlier account boundaries.
func Sections(text string, accounts []Account, match func(Account) bool) []AccountSection {
	var sections []AccountSection
	for i := len(accounts) - 1; i >= 0; i-- {
		acc := accounts[i]
		if !match(acc) {
			continue
		}

		before, after, found := strings.Cut(text, acc.Header)
		if !found {
			continue
		}
		text = before
		sections = append(sections, AccountSection{Account: acc, Body: after})
	}
	return sections
}

// MatchesAccountNumber reports whether an account token belongs to the
// configured IBAN or account number. The comparison is whitespace-insensitive
// and accepts the token as a substring, since statement headers carry only
// the domestic account part of the IBAN.
func MatchesAccountNumber(accountNumber, iban string) bool {
	if accountNumber == "" {
		return false
	}
	return strings.Contains(strings.ReplaceAll(iban, " ", ""), accountNumber)
}
