package firestore

import (
	"time"

	"inventory/internal/domain/entity"
)

// shelfDoc is the document stored in shelves/{id}.
type shelfDoc struct {
	Name      string    `firestore:"name"`
	Capacity  int       `firestore:"capacity"`
	Type      string    `firestore:"type"`
	ItemCount int       `firestore:"itemCount"`
	CreatedAt time.Time `firestore:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

type historyDoc struct {
	Action        string    `firestore:"action"`
	Date          time.Time `firestore:"date"`
	UserID        string    `firestore:"userId,omitempty"`
	UserName      string    `firestore:"userName,omitempty"`
	Source        string    `firestore:"source,omitempty"`
	Description   string    `firestore:"description,omitempty"`
	ShelfName     string    `firestore:"shelfName,omitempty"`
	FromShelfName string    `firestore:"fromShelfName,omitempty"`
}

// deviceDoc is the document stored in onus/{id}. The id is repeated as a field
// so prefix searches can range over it.
type deviceDoc struct {
	ID          string       `firestore:"id"`
	ShelfID     string       `firestore:"shelfId"`
	ShelfName   string       `firestore:"shelfName"`
	Type        string       `firestore:"type"`
	Status      string       `firestore:"status"`
	AddedDate   time.Time    `firestore:"addedDate"`
	RemovedDate *time.Time   `firestore:"removedDate"`
	History     []historyDoc `firestore:"history"`
}

// userDoc is the document stored in users/{uid}.
type userDoc struct {
	Name       string    `firestore:"name"`
	Email      string    `firestore:"email"`
	SearchList []string  `firestore:"searchList"`
	CreatedAt  time.Time `firestore:"createdAt"`
	UpdatedAt  time.Time `firestore:"updatedAt"`
}

// --- Mapper Functions ---

func toShelfDomain(id string, doc *shelfDoc) *entity.Shelf {
	return &entity.Shelf{
		ID:        id,
		Name:      doc.Name,
		Capacity:  doc.Capacity,
		Type:      entity.DeviceType(doc.Type),
		ItemCount: doc.ItemCount,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

func fromShelfDomain(shelf *entity.Shelf) *shelfDoc {
	return &shelfDoc{
		Name:      shelf.Name,
		Capacity:  shelf.Capacity,
		Type:      shelf.Type.String(),
		ItemCount: shelf.ItemCount,
		CreatedAt: shelf.CreatedAt,
		UpdatedAt: shelf.UpdatedAt,
	}
}

func toDeviceDomain(id string, doc *deviceDoc) *entity.Device {
	history := make([]entity.HistoryEntry, 0, len(doc.History))
	for _, h := range doc.History {
		history = append(history, entity.HistoryEntry{
			Action:        entity.HistoryAction(h.Action),
			Date:          h.Date,
			UserID:        h.UserID,
			UserName:      h.UserName,
			Source:        h.Source,
			Description:   h.Description,
			ShelfName:     h.ShelfName,
			FromShelfName: h.FromShelfName,
		})
	}

	return &entity.Device{
		ID:          id,
		ShelfID:     doc.ShelfID,
		ShelfName:   doc.ShelfName,
		Type:        entity.DeviceType(doc.Type),
		Status:      entity.DeviceStatus(doc.Status),
		AddedDate:   doc.AddedDate,
		RemovedDate: doc.RemovedDate,
		History:     history,
	}
}

func fromDeviceDomain(device *entity.Device) *deviceDoc {
	history := make([]historyDoc, 0, len(device.History))
	for _, h := range device.History {
		history = append(history, historyDoc{
			Action:        string(h.Action),
			Date:          h.Date,
			UserID:        h.UserID,
			UserName:      h.UserName,
			Source:        h.Source,
			Description:   h.Description,
			ShelfName:     h.ShelfName,
			FromShelfName: h.FromShelfName,
		})
	}

	return &deviceDoc{
		ID:          device.ID,
		ShelfID:     device.ShelfID,
		ShelfName:   device.ShelfName,
		Type:        device.Type.String(),
		Status:      device.Status.String(),
		AddedDate:   device.AddedDate,
		RemovedDate: device.RemovedDate,
		History:     history,
	}
}

func toUserDomain(id string, doc *userDoc) *entity.UserProfile {
	searchList := doc.SearchList
	if searchList == nil {
		searchList = []string{}
	}

	return &entity.UserProfile{
		ID:         id,
		Name:       doc.Name,
		Email:      doc.Email,
		SearchList: searchList,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
}
