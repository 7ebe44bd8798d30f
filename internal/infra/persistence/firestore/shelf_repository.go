package firestore

import (
	"context"
	"time"

	"inventory/internal/domain/constants"
	"inventory/internal/domain/entity"
	"inventory/internal/domain/repository"
	"inventory/internal/errors"

	fs "cloud.google.com/go/firestore"
)

type shelfRepository struct {
	client *fs.Client
	tx     *fs.Transaction
}

func (r *shelfRepository) collection() *fs.CollectionRef {
	return r.client.Collection(constants.CollectionShelves)
}

func (r *shelfRepository) FindShelfByID(_ context.Context, id string) (*entity.Shelf, error) {
	snap, err := r.tx.Get(r.collection().Doc(id))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrShelfNotFound
		}

		return nil, errors.Wrapf(err, "get shelf %s", id)
	}

	var doc shelfDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "decode shelf %s", id)
	}

	return toShelfDomain(snap.Ref.ID, &doc), nil
}

func (r *shelfRepository) ListShelves(_ context.Context, filter repository.ShelfFilter) ([]*entity.Shelf, error) {
	query := r.collection().Query
	if filter.Type != "" {
		query = query.Where("type", "==", filter.Type.String())
	}
	query = query.OrderBy("name", fs.Asc)

	shelves := make([]*entity.Shelf, 0)
	err := collect(r.tx.Documents(query), func(snap *fs.DocumentSnapshot) error {
		var doc shelfDoc
		if err := snap.DataTo(&doc); err != nil {
			return errors.Wrapf(err, "decode shelf %s", snap.Ref.ID)
		}

		shelf := toShelfDomain(snap.Ref.ID, &doc)
		if filter.WithSpaceOnly && !shelf.HasSpace() {
			return nil
		}
		shelves = append(shelves, shelf)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "list shelves")
	}

	return shelves, nil
}

func (r *shelfRepository) CreateShelf(_ context.Context, shelf *entity.Shelf) error {
	ref := r.collection().NewDoc()
	now := time.Now().UTC()

	shelf.ID = ref.ID
	shelf.CreatedAt = now
	shelf.UpdatedAt = now

	if err := r.tx.Create(ref, fromShelfDomain(shelf)); err != nil {
		return errors.Wrap(err, "create shelf")
	}

	return nil
}

func (r *shelfRepository) UpdateShelf(_ context.Context, shelf *entity.Shelf) error {
	shelf.UpdatedAt = time.Now().UTC()

	// Update fails at commit when the document does not exist.
	err := r.tx.Update(r.collection().Doc(shelf.ID), []fs.Update{
		{Path: "name", Value: shelf.Name},
		{Path: "capacity", Value: shelf.Capacity},
		{Path: "type", Value: shelf.Type.String()},
		{Path: "itemCount", Value: shelf.ItemCount},
		{Path: "updatedAt", Value: shelf.UpdatedAt},
	})
	if err != nil {
		return errors.Wrapf(err, "update shelf %s", shelf.ID)
	}

	return nil
}

func (r *shelfRepository) DeleteShelf(_ context.Context, id string) error {
	if err := r.tx.Delete(r.collection().Doc(id), fs.Exists); err != nil {
		return errors.Wrapf(err, "delete shelf %s", id)
	}

	return nil
}
