package model

import "strings"

// AuditStatus is the closed set of audit opinions issued for county accounts.
type AuditStatus string

const (
	// AuditClean is an unqualified opinion: the accounts present fairly.
	AuditClean AuditStatus = "clean"
	// AuditQualified is an opinion with specific reservations.
	AuditQualified AuditStatus = "qualified"
	// AuditAdverse means the accounts do not present fairly.
	AuditAdverse AuditStatus = "adverse"
	// AuditDisclaimer means the auditor could not form an opinion.
	AuditDisclaimer AuditStatus = "disclaimer"
	// AuditPending covers counties with no published opinion yet, and is the
	// fallback for any status value outside the known set.
	AuditPending AuditStatus = "pending"
)

// AllAuditStatuses lists every status in display order.
var AllAuditStatuses = []AuditStatus{
	AuditClean,
	AuditQualified,
	AuditAdverse,
	AuditDisclaimer,
	AuditPending,
}

// Valid reports whether the status is a member of the closed set.
func (s AuditStatus) Valid() bool {
	switch s {
	case AuditClean, AuditQualified, AuditAdverse, AuditDisclaimer, AuditPending:
		return true
	}
	return false
}

// Label returns the status's human-readable form.
func (s AuditStatus) Label() string {
	switch s {
	case AuditClean:
		return "Clean (Unqualified)"
	case AuditQualified:
		return "Qualified"
	case AuditAdverse:
		return "Adverse"
	case AuditDisclaimer:
		return "Disclaimer of Opinion"
	case AuditPending:
		return "Pending / Not Published"
	}
	return "Pending / Not Published"
}

// ParseAuditStatus maps a raw opinion string from a data feed onto the closed
// status set. Feeds spell opinions inconsistently ("Unqualified (Clean)",
// "Disclaimer of opinion", "Except-for qualified"), so matching is tolerant.
// Anything unrecognized, including the empty string, maps to AuditPending.
func ParseAuditStatus(raw string) AuditStatus {
	cleaned := strings.ToLower(strings.TrimSpace(raw))

	switch cleaned {
	case "clean", "unqualified", "unmodified":
		return AuditClean
	case "qualified":
		return AuditQualified
	case "adverse":
		return AuditAdverse
	case "disclaimer", "disclaimed":
		return AuditDisclaimer
	case "pending", "":
		return AuditPending
	}

	// Substring checks, ordered so "unqualified" never hits the "qualified"
	// branch below it.
	switch {
	case strings.Contains(cleaned, "unqualified"), strings.Contains(cleaned, "clean"):
		return AuditClean
	case strings.Contains(cleaned, "disclaim"):
		return AuditDisclaimer
	case strings.Contains(cleaned, "adverse"):
		return AuditAdverse
	case strings.Contains(cleaned, "qualified"), strings.Contains(cleaned, "except"):
		return AuditQualified
	}

	return AuditPending
}
