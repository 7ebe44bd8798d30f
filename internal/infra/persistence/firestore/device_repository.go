package firestore

import (
	"context"

	"inventory/internal/domain/constants"
	"inventory/internal/domain/entity"
	"inventory/internal/domain/repository"
	"inventory/internal/errors"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// prefixUpperBound closes a range query over ids starting with a prefix.
const prefixUpperBound = "\uf8ff"

type deviceRepository struct {
	client *fs.Client
	tx     *fs.Transaction
}

func (r *deviceRepository) collection() *fs.CollectionRef {
	return r.client.Collection(constants.CollectionDevices)
}

func (r *deviceRepository) FindDeviceByID(_ context.Context, id string) (*entity.Device, error) {
	snap, err := r.tx.Get(r.collection().Doc(id))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrapf(err, "get device %s", id)
	}

	return decodeDevice(snap)
}

func (r *deviceRepository) FindDevicesByIDs(_ context.Context, ids []string) (map[string]*entity.Device, error) {
	devices := make(map[string]*entity.Device, len(ids))
	if len(ids) == 0 {
		return devices, nil
	}

	refs := make([]*fs.DocumentRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, r.collection().Doc(id))
	}

	snaps, err := r.tx.GetAll(refs)
	if err != nil {
		return nil, errors.Wrap(err, "get devices")
	}

	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}

		device, err := decodeDevice(snap)
		if err != nil {
			return nil, err
		}
		devices[device.ID] = device
	}

	return devices, nil
}

func (r *deviceRepository) FindDevicesByShelf(_ context.Context, shelfID string) ([]*entity.Device, error) {
	query := r.collection().Where("shelfId", "==", shelfID).OrderBy("id", fs.Asc)

	return r.query(query)
}

func (r *deviceRepository) SearchDevices(_ context.Context, filter repository.DeviceFilter) ([]*entity.Device, error) {
	query := r.collection().Query
	if filter.ShelfID != "" {
		query = query.Where("shelfId", "==", filter.ShelfID)
	}
	if filter.Status != "" {
		query = query.Where("status", "==", filter.Status.String())
	}
	if filter.Type != "" {
		query = query.Where("type", "==", filter.Type.String())
	}
	if filter.IDPrefix != "" {
		query = query.
			Where("id", ">=", filter.IDPrefix).
			Where("id", "<", filter.IDPrefix+prefixUpperBound)
	}
	query = query.OrderBy("id", fs.Asc)
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return r.query(query)
}

func (r *deviceRepository) CreateDevice(_ context.Context, device *entity.Device) error {
	// A duplicate id surfaces as AlreadyExists when the transaction commits.
	if err := r.tx.Create(r.collection().Doc(device.ID), fromDeviceDomain(device)); err != nil {
		return errors.Wrapf(err, "create device %s", device.ID)
	}

	return nil
}

func (r *deviceRepository) UpdateDevice(_ context.Context, device *entity.Device) error {
	doc := fromDeviceDomain(device)

	err := r.tx.Update(r.collection().Doc(device.ID), []fs.Update{
		{Path: "shelfId", Value: doc.ShelfID},
		{Path: "shelfName", Value: doc.ShelfName},
		{Path: "type", Value: doc.Type},
		{Path: "status", Value: doc.Status},
		{Path: "addedDate", Value: doc.AddedDate},
		{Path: "removedDate", Value: doc.RemovedDate},
		{Path: "history", Value: doc.History},
	})
	if err != nil {
		return errors.Wrapf(err, "update device %s", device.ID)
	}

	return nil
}

func (r *deviceRepository) DeleteDevice(_ context.Context, id string) error {
	if err := r.tx.Delete(r.collection().Doc(id), fs.Exists); err != nil {
		return errors.Wrapf(err, "delete device %s", id)
	}

	return nil
}

func (r *deviceRepository) query(query fs.Query) ([]*entity.Device, error) {
	devices := make([]*entity.Device, 0)
	err := collect(r.tx.Documents(query), func(snap *fs.DocumentSnapshot) error {
		device, err := decodeDevice(snap)
		if err != nil {
			return err
		}
		devices = append(devices, device)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "query devices")
	}

	return devices, nil
}

func decodeDevice(snap *fs.DocumentSnapshot) (*entity.Device, error) {
	var doc deviceDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "decode device %s", snap.Ref.ID)
	}

	return toDeviceDomain(snap.Ref.ID, &doc), nil
}

// collect drains iter, calling fn for every document.
func collect(iter *fs.DocumentIterator, fn func(*fs.DocumentSnapshot) error) error {
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(snap); err != nil {
			return err
		}
	}
}
