package forms

import (
	"context"

	"github.com/opencatalog/catalogd/internal/ctxlog"
	"github.com/opencatalog/catalogd/internal/model"
)

// OrgLister reports the organization ids a user holds a permission on.
type OrgLister interface {
	OrganizationsForUser(ctx context.Context, userID, permission string) ([]string, error)
}

// CollaboratorLister reports the dataset ids a user collaborates on.
type CollaboratorLister interface {
	DatasetsForCollaborator(ctx context.Context, userID string) ([]string, error)
}

// PermissionLabelProvider derives the opaque access labels used by search
// filtering: a dataset is visible to an actor iff the two label sets
// intersect.
type PermissionLabelProvider interface {
	DatasetLabels(ctx context.Context, ds *model.Dataset) []string
	ActorLabels(ctx context.Context, user *model.User) []string
}

// DefaultPermissionLabels implements the built-in labeling rules:
//
//   - everyone can read public datasets: "public"
//   - users can read their own drafts: "creator-<user id>"
//   - users can read datasets belonging to their orgs: "member-<org id>"
//   - users can read datasets they collaborate on: "collaborator-<dataset id>"
//
// A private org-owned dataset is labeled by org membership only, never by
// creator identity: org-owned drafts belong to the org, and a creator who
// leaves (or never joined) the org loses sight of them.
type DefaultPermissionLabels struct {
	// CollaboratorsEnabled gates the collaborator labels on both sides.
	CollaboratorsEnabled bool
	// Orgs resolves a user's org memberships. Nil means no memberships.
	Orgs OrgLister
	// Collaborators resolves a user's dataset collaborations. Nil means none.
	Collaborators CollaboratorLister
}

// DatasetLabels returns the labels granting access to ds.
func (p *DefaultPermissionLabels) DatasetLabels(ctx context.Context, ds *model.Dataset) []string {
	if ds.State == model.StateActive && !ds.Private {
		return []string{"public"}
	}

	var labels []string
	if p.CollaboratorsEnabled {
		// One generic label shared by all of this dataset's collaborators.
		labels = append(labels, "collaborator-"+ds.ID)
	}

	if ds.OwnerOrg != "" {
		labels = append(labels, "member-"+ds.OwnerOrg)
	} else {
		labels = append(labels, "creator-"+ds.CreatorUserID)
	}

	return labels
}

// ActorLabels returns the labels user holds. Anonymous actors hold only
// "public". Collaborator lookup failures degrade to no labels from that
// source; per-request label derivation never errors.
func (p *DefaultPermissionLabels) ActorLabels(ctx context.Context, user *model.User) []string {
	labels := []string{"public"}
	if user == nil {
		return labels
	}

	labels = append(labels, "creator-"+user.ID)

	if p.Orgs != nil {
		orgs, err := p.Orgs.OrganizationsForUser(ctx, user.ID, "read")
		if err != nil {
			ctxlog.FromContext(ctx).Warn("Could not resolve org memberships for labels.",
				"user", user.ID, "error", err)
		}
		for _, org := range orgs {
			labels = append(labels, "member-"+org)
		}
	}

	if p.CollaboratorsEnabled && p.Collaborators != nil {
		datasets, err := p.Collaborators.DatasetsForCollaborator(ctx, user.ID)
		if err != nil {
			ctxlog.FromContext(ctx).Warn("Could not resolve collaborations for labels.",
				"user", user.ID, "error", err)
		}
		for _, id := range datasets {
			labels = append(labels, "collaborator-"+id)
		}
	}

	return labels
}

// Visible reports whether any dataset label is also held by the actor.
func Visible(datasetLabels, actorLabels []string) bool {
	if len(datasetLabels) == 0 || len(actorLabels) == 0 {
		return false
	}
	held := make(map[string]struct{}, len(actorLabels))
	for _, label := range actorLabels {
		held[label] = struct{}{}
	}
	for _, label := range datasetLabels {
		if _, ok := held[label]; ok {
			return true
		}
	}
	return false
}
