package forms_test

import (
	"context"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/opencatalog/catalogd/internal/forms"
	"github.com/opencatalog/catalogd/internal/model"
)

// staticOrgLister serves org memberships from a fixed map.
type staticOrgLister struct {
	orgs map[string][]string
}

func (l *staticOrgLister) OrganizationsForUser(ctx context.Context, userID, permission string) ([]string, error) {
	return l.orgs[userID], nil
}

// staticCollabLister serves collaborations from a fixed map.
type staticCollabLister struct {
	datasets map[string][]string
}

func (l *staticCollabLister) DatasetsForCollaborator(ctx context.Context, userID string) ([]string, error) {
	return l.datasets[userID], nil
}

func TestDatasetLabels_PublicDataset(t *testing.T) {
	t.Parallel()
	p := &forms.DefaultPermissionLabels{CollaboratorsEnabled: true}

	ds := &model.Dataset{ID: "d1", State: model.StateActive, Private: false}
	labels := p.DatasetLabels(context.Background(), ds)

	// Public is terminal: no other label is needed or emitted.
	require.Equal(t, []string{"public"}, labels)

	// Even an anonymous actor sees it.
	anon := p.ActorLabels(context.Background(), nil)
	require.Equal(t, []string{"public"}, anon)
	assert.True(t, forms.Visible(labels, anon))
}

func TestDatasetLabels_OrgDraftInvisibleToNonMemberCreator(t *testing.T) {
	t.Parallel()
	// Collaborators disabled, dataset owned by org-1, created by u1.
	p := &forms.DefaultPermissionLabels{
		Orgs: &staticOrgLister{orgs: map[string][]string{}},
	}

	ds := &model.Dataset{
		ID:            "d1",
		State:         model.StateDraft,
		Private:       true,
		OwnerOrg:      "org-1",
		CreatorUserID: "u1",
	}
	dsLabels := p.DatasetLabels(context.Background(), ds)
	require.Equal(t, []string{"member-org-1"}, dsLabels)

	// The creator without org membership cannot see their own draft: org
	// labels supersede creator labels when an owning org is set.
	actorLabels := p.ActorLabels(context.Background(), &model.User{ID: "u1"})
	require.Equal(t, []string{"public", "creator-u1"}, actorLabels)
	assert.False(t, forms.Visible(dsLabels, actorLabels))
}

func TestDatasetLabels_PersonalDraftVisibleToCreator(t *testing.T) {
	t.Parallel()
	p := &forms.DefaultPermissionLabels{}

	ds := &model.Dataset{
		ID:            "d1",
		State:         model.StateDraft,
		Private:       true,
		CreatorUserID: "u1",
	}
	dsLabels := p.DatasetLabels(context.Background(), ds)
	require.Equal(t, []string{"creator-u1"}, dsLabels)

	actorLabels := p.ActorLabels(context.Background(), &model.User{ID: "u1"})
	assert.True(t, forms.Visible(dsLabels, actorLabels))
}

func TestDatasetLabels_CollaboratorSeeding(t *testing.T) {
	t.Parallel()
	p := &forms.DefaultPermissionLabels{
		CollaboratorsEnabled: true,
		Collaborators: &staticCollabLister{datasets: map[string][]string{
			"u2": {"d1"},
		}},
	}

	ds := &model.Dataset{
		ID:       "d1",
		State:    model.StateDraft,
		Private:  true,
		OwnerOrg: "org-1",
	}
	dsLabels := p.DatasetLabels(context.Background(), ds)
	require.Equal(t, []string{"collaborator-d1", "member-org-1"}, dsLabels)

	// u2 is not an org member but collaborates on d1.
	actorLabels := p.ActorLabels(context.Background(), &model.User{ID: "u2"})
	assert.Contains(t, actorLabels, "collaborator-d1")
	assert.True(t, forms.Visible(dsLabels, actorLabels))
}

// visibleByInspection computes visibility directly from the domain fields,
// independent of any label derivation. It is the oracle the label scheme
// must agree with.
func visibleByInspection(ds *model.Dataset, user *model.User, memberships, collaborations []string, collaboratorsEnabled bool) bool {
	if ds.State == model.StateActive && !ds.Private {
		return true
	}
	if user == nil {
		return false
	}
	if collaboratorsEnabled && slices.Contains(collaborations, ds.ID) {
		return true
	}
	if ds.OwnerOrg != "" {
		return slices.Contains(memberships, ds.OwnerOrg)
	}
	return ds.CreatorUserID == user.ID
}

func TestLabelVisibilityInvariant(t *testing.T) {
	t.Parallel()

	userIDs := []string{"u1", "u2", "u3", "u4", "u5"}
	orgIDs := []string{"org-1", "org-2", "org-3"}
	datasetIDs := make([]string, 20)
	for i := range datasetIDs {
		datasetIDs[i] = fmt.Sprintf("d%d", i+1)
	}

	rapid.Check(t, func(t *rapid.T) {
		collaboratorsEnabled := rapid.Bool().Draw(t, "collaboratorsEnabled")

		ds := &model.Dataset{
			ID:            rapid.SampledFrom(datasetIDs).Draw(t, "datasetID"),
			State:         rapid.SampledFrom([]string{model.StateActive, model.StateDraft, model.StateDeleted}).Draw(t, "state"),
			Private:       rapid.Bool().Draw(t, "private"),
			CreatorUserID: rapid.SampledFrom(userIDs).Draw(t, "creator"),
		}
		if rapid.Bool().Draw(t, "orgOwned") {
			ds.OwnerOrg = rapid.SampledFrom(orgIDs).Draw(t, "ownerOrg")
		}

		var user *model.User
		var memberships, collaborations []string
		if rapid.Bool().Draw(t, "authenticated") {
			user = &model.User{ID: rapid.SampledFrom(userIDs).Draw(t, "userID")}
			memberships = rapid.SliceOfNDistinct(rapid.SampledFrom(orgIDs), 0, len(orgIDs), rapid.ID).Draw(t, "memberships")
			collaborations = rapid.SliceOfNDistinct(rapid.SampledFrom(datasetIDs), 0, 5, rapid.ID).Draw(t, "collaborations")
		}

		p := &forms.DefaultPermissionLabels{
			CollaboratorsEnabled: collaboratorsEnabled,
			Orgs:                 &staticOrgLister{orgs: map[string][]string{userID(user): memberships}},
			Collaborators:        &staticCollabLister{datasets: map[string][]string{userID(user): collaborations}},
		}

		ctx := context.Background()
		got := forms.Visible(p.DatasetLabels(ctx, ds), p.ActorLabels(ctx, user))
		want := visibleByInspection(ds, user, memberships, collaborations, collaboratorsEnabled)

		if got != want {
			t.Fatalf("label intersection says visible=%v, field inspection says %v\ndataset=%+v user=%+v memberships=%v collaborations=%v collabEnabled=%v",
				got, want, ds, user, memberships, collaborations, collaboratorsEnabled)
		}
	})
}

func userID(u *model.User) string {
	if u == nil {
		return ""
	}
	return u.ID
}
