package model

// Record is a loosely typed data record as submitted through the API or a
// web form, before schema validation has normalized it.
type Record map[string]any

// Dataset lifecycle states.
const (
	StateActive  = "active"
	StateDraft   = "draft"
	StateDeleted = "deleted"
)

// Dataset is the catalog's primary record: a published or draft collection
// of resources owned by an organization or by an individual user.
type Dataset struct {
	ID            string
	Type          string
	Title         string
	State         string
	Private       bool
	OwnerOrg      string
	CreatorUserID string
}

// Group is a curation container for datasets. Organizations are groups with
// the organization flag set; they additionally own datasets.
type Group struct {
	ID             string
	Type           string
	Title          string
	State          string
	IsOrganization bool
}

// User is the acting identity for permission checks and visibility labels.
type User struct {
	ID       string
	Name     string
	Sysadmin bool
}
