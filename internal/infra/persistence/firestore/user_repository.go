package firestore

import (
	"context"
	"slices"
	"time"

	"inventory/internal/domain/constants"
	"inventory/internal/domain/entity"
	"inventory/internal/domain/repository"
	"inventory/internal/errors"

	fs "cloud.google.com/go/firestore"
)

// arrayContainsAnyLimit is the largest value list Firestore accepts for array-contains-any.
const arrayContainsAnyLimit = 30

type userRepository struct {
	client *fs.Client
	tx     *fs.Transaction
}

func (r *userRepository) collection() *fs.CollectionRef {
	return r.client.Collection(constants.CollectionUsers)
}

func (r *userRepository) FindByID(_ context.Context, id string) (*entity.UserProfile, error) {
	snap, err := r.tx.Get(r.collection().Doc(id))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrapf(err, "get user %s", id)
	}

	var doc userDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "decode user %s", id)
	}

	return toUserDomain(snap.Ref.ID, &doc), nil
}

func (r *userRepository) Upsert(ctx context.Context, profile *entity.UserProfile) error {
	now := time.Now().UTC()

	existing, err := r.FindByID(ctx, profile.ID)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		profile.SearchList = []string{}
		profile.CreatedAt = now
		profile.UpdatedAt = now

		if err := r.tx.Create(r.collection().Doc(profile.ID), &userDoc{
			Name:       profile.Name,
			Email:      profile.Email,
			SearchList: profile.SearchList,
			CreatedAt:  now,
			UpdatedAt:  now,
		}); err != nil {
			return errors.Wrapf(err, "create user %s", profile.ID)
		}

		return nil
	case err != nil:
		return err
	}

	profile.SearchList = existing.SearchList
	profile.CreatedAt = existing.CreatedAt
	profile.UpdatedAt = existing.UpdatedAt

	if existing.Name == profile.Name && existing.Email == profile.Email {
		return nil
	}

	profile.UpdatedAt = now
	if err := r.tx.Update(r.collection().Doc(profile.ID), []fs.Update{
		{Path: "name", Value: profile.Name},
		{Path: "email", Value: profile.Email},
		{Path: "updatedAt", Value: now},
	}); err != nil {
		return errors.Wrapf(err, "update user %s", profile.ID)
	}

	return nil
}

func (r *userRepository) FindUserIDsSearching(_ context.Context, deviceIDs []string) (map[string][]string, error) {
	matches := make(map[string][]string)

	for chunk := range slices.Chunk(deviceIDs, arrayContainsAnyLimit) {
		query := r.collection().Where("searchList", "array-contains-any", chunk)

		err := collect(r.tx.Documents(query), func(snap *fs.DocumentSnapshot) error {
			var doc userDoc
			if err := snap.DataTo(&doc); err != nil {
				return errors.Wrapf(err, "decode user %s", snap.Ref.ID)
			}

			for _, id := range chunk {
				if slices.Contains(doc.SearchList, id) && !slices.Contains(matches[snap.Ref.ID], id) {
					matches[snap.Ref.ID] = append(matches[snap.Ref.ID], id)
				}
			}

			return nil
		})
		if err != nil {
			return nil, errors.Wrap(err, "query search lists")
		}
	}

	return matches, nil
}

func (r *userRepository) AddToSearchList(_ context.Context, userID string, deviceIDs []string) error {
	if len(deviceIDs) == 0 {
		return nil
	}

	err := r.tx.Set(r.collection().Doc(userID), map[string]any{
		"searchList": fs.ArrayUnion(toValues(deviceIDs)...),
		"updatedAt":  time.Now().UTC(),
	}, fs.MergeAll)
	if err != nil {
		return errors.Wrapf(err, "add to search list of %s", userID)
	}

	return nil
}

// RemoveFromSearchList uses a merge so that removing from a profile that was never
// stored is a no-op rather than a failed commit.
func (r *userRepository) RemoveFromSearchList(_ context.Context, userID string, deviceIDs []string) error {
	if len(deviceIDs) == 0 {
		return nil
	}

	err := r.tx.Set(r.collection().Doc(userID), map[string]any{
		"searchList": fs.ArrayRemove(toValues(deviceIDs)...),
		"updatedAt":  time.Now().UTC(),
	}, fs.MergeAll)
	if err != nil {
		return errors.Wrapf(err, "remove from search list of %s", userID)
	}

	return nil
}

func toValues(ids []string) []any {
	values := make([]any, len(ids))
	for i, id := range ids {
		values[i] = id
	}

	return values
}
