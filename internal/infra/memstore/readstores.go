package memstore

import (
	"context"
	"slices"
	"time"

	"hotel-core/internal/domain/invoice"
	"hotel-core/internal/domain/ledger"
	"hotel-core/internal/domain/reservation"
	"hotel-core/internal/domain/room"
	"hotel-core/internal/infra"
	"hotel-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RoomReadStore struct{ store *Store }

func NewRoomReadStore(store *Store) *RoomReadStore { return &RoomReadStore{store: store} }

func (r *RoomReadStore) FindRoom(_ context.Context, id uuid.UUID) (view *queries.RoomView, err error) {
	r.store.read(func(st *state) {
		row, ok := st.rooms[id]
		if !ok {
			err = infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
			return
		}
		view = roomView(row)
	})
	return view, err
}

func (r *RoomReadStore) ListAvailableRooms(_ context.Context, roomID *uuid.UUID, guests int, stay reservation.DateRange) ([]*queries.RoomView, error) {
	var views []*queries.RoomView
	r.store.read(func(st *state) {
		occ := make([]reservation.Occupancy, 0, len(st.reservations))
		for _, rec := range st.reservations {
			occ = append(occ, reservation.ReconstructReservation(rec).Occupancy())
		}
		for _, row := range st.rooms {
			if roomID != nil && row.ID != *roomID {
				continue
			}
			if row.Status == room.StatusOutOfService || row.Capacity < guests {
				continue
			}
			if _, busy := reservation.FirstConflict(occ, row.ID, stay, nil); busy {
				continue
			}
			views = append(views, roomView(row))
		}
	})
	slices.SortFunc(views, func(a, b *queries.RoomView) int {
		switch {
		case a.Number < b.Number:
			return -1
		case a.Number > b.Number:
			return 1
		default:
			return 0
		}
	})
	return views, nil
}

func roomView(row roomRow) *queries.RoomView {
	return &queries.RoomView{
		ID:           row.ID,
		Number:       row.Number,
		RoomType:     row.RoomType,
		Capacity:     row.Capacity,
		NightlyPrice: row.NightlyPrice,
		Status:       row.Status.String(),
	}
}

type ClientReadStore struct{ store *Store }

func NewClientReadStore(store *Store) *ClientReadStore { return &ClientReadStore{store: store} }

func (r *ClientReadStore) FindClient(_ context.Context, id uuid.UUID) (view *queries.ClientView, err error) {
	r.store.read(func(st *state) {
		row, ok := st.clients[id]
		if !ok {
			err = infra.WrapRepoErr("client not found", nil, infra.KindNotFound)
			return
		}
		view = &queries.ClientView{ID: row.ID, Name: row.Name, Email: row.Email}
	})
	return view, err
}

type ReservationReadStore struct{ store *Store }

func NewReservationReadStore(store *Store) *ReservationReadStore {
	return &ReservationReadStore{store: store}
}

func (r *ReservationReadStore) FindByID(_ context.Context, id uuid.UUID) (view *queries.ReservationView, err error) {
	r.store.read(func(st *state) {
		rec, ok := st.reservations[id]
		if !ok {
			err = infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
			return
		}
		rm := st.rooms[rec.RoomID]
		view = &queries.ReservationView{
			ID:                 rec.ID,
			Code:               rec.Code,
			ClientID:           rec.ClientID,
			RoomID:             rec.RoomID,
			RoomNumber:         rm.Number,
			RoomType:           rm.RoomType,
			CheckIn:            rec.CheckIn,
			CheckOut:           rec.CheckOut,
			Status:             rec.Status.String(),
			CancellationReason: rec.CancellationReason,
			Version:            rec.Version,
			CheckInMetadata:    rec.CheckInMetadata,
			CheckOutMetadata:   rec.CheckOutMetadata,
			CreatedAt:          rec.CreatedAt,
			UpdatedAt:          rec.UpdatedAt,
		}
		for _, inv := range st.invoices {
			if inv.ReservationID == rec.ID {
				invID := inv.ID
				view.InvoiceID = &invID
			}
		}
	})
	return view, err
}

func (r *ReservationReadStore) FindByClientFirstPage(ctx context.Context, clientID uuid.UUID, limit int) ([]*queries.ReservationListItem, error) {
	return r.list(clientID, nil, uuid.Nil, limit), nil
}

func (r *ReservationReadStore) FindByClientKeyset(ctx context.Context, clientID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int) ([]*queries.ReservationListItem, error) {
	return r.list(clientID, &lastCreatedAt, lastID, limit), nil
}

// list orders by (created_at, id) descending, starting strictly after the cursor.
func (r *ReservationReadStore) list(clientID uuid.UUID, afterCreatedAt *time.Time, afterID uuid.UUID, limit int) []*queries.ReservationListItem {
	var items []*queries.ReservationListItem
	r.store.read(func(st *state) {
		for _, rec := range st.reservations {
			if rec.ClientID != clientID {
				continue
			}
			items = append(items, &queries.ReservationListItem{
				ID:         rec.ID,
				Code:       rec.Code,
				RoomID:     rec.RoomID,
				RoomNumber: st.rooms[rec.RoomID].Number,
				CheckIn:    rec.CheckIn,
				CheckOut:   rec.CheckOut,
				Status:     rec.Status.String(),
				Version:    rec.Version,
				CreatedAt:  rec.CreatedAt,
			})
		}
	})

	slices.SortFunc(items, func(a, b *queries.ReservationListItem) int {
		return -compareKey(a.CreatedAt, a.ID, b.CreatedAt, b.ID)
	})
	if afterCreatedAt != nil {
		// cursors carry microseconds
		cut := afterCreatedAt.Truncate(time.Microsecond)
		idx := slices.IndexFunc(items, func(it *queries.ReservationListItem) bool {
			return compareKey(it.CreatedAt.Truncate(time.Microsecond), it.ID, cut, afterID) < 0
		})
		if idx < 0 {
			return nil
		}
		items = items[idx:]
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

type InvoiceReadStore struct{ store *Store }

func NewInvoiceReadStore(store *Store) *InvoiceReadStore { return &InvoiceReadStore{store: store} }

func (r *InvoiceReadStore) FindByID(_ context.Context, id uuid.UUID) (view *queries.InvoiceView, err error) {
	r.store.read(func(st *state) {
		rec, ok := st.invoices[id]
		if !ok {
			err = infra.WrapRepoErr("invoice not found", nil, infra.KindNotFound)
			return
		}
		view = invoiceView(rec)

		var rows []paymentRow
		for _, p := range st.payments {
			if p.InvoiceID == id {
				rows = append(rows, p)
			}
		}
		slices.SortFunc(rows, func(a, b paymentRow) int {
			return compareKey(a.PaidAt, a.ID, b.PaidAt, b.ID)
		})
		view.Payments = make([]*queries.PaymentView, len(rows))
		for i, p := range rows {
			view.Payments[i] = &queries.PaymentView{
				ID:        p.ID,
				InvoiceID: p.InvoiceID,
				ClientID:  p.ClientID,
				Amount:    p.Amount,
				Method:    string(p.Method),
				Status:    string(p.Status),
				Reference: p.Reference,
				PaidAt:    p.PaidAt,
			}
		}
	})
	return view, err
}

func (r *InvoiceReadStore) ListOutstandingByClient(_ context.Context, clientID uuid.UUID) ([]*queries.InvoiceView, error) {
	var recs []invoice.Record
	r.store.read(func(st *state) {
		for _, rec := range st.invoices {
			if rec.ClientID == clientID && rec.Status.IsOpen() {
				recs = append(recs, rec)
			}
		}
	})
	sortInvoicesByIssue(recs)

	views := make([]*queries.InvoiceView, len(recs))
	for i, rec := range recs {
		views[i] = invoiceView(rec)
	}
	return views, nil
}

func invoiceView(rec invoice.Record) *queries.InvoiceView {
	inv := invoice.ReconstructInvoice(rec)
	outstanding := inv.Outstanding()
	if inv.Status() == invoice.StatusCancelled {
		outstanding = decimal.Zero
	}
	return &queries.InvoiceView{
		ID:                 rec.ID,
		Number:             rec.Number,
		ReservationID:      rec.ReservationID,
		ClientID:           rec.ClientID,
		Subtotal:           rec.Subtotal,
		TaxRate:            rec.TaxRatePercent,
		TaxAmount:          rec.TaxAmount,
		Total:              rec.Total,
		AmountPaid:         rec.AmountPaid,
		Outstanding:        outstanding,
		Status:             rec.Status.String(),
		IssuedAt:           rec.IssuedAt,
		DueDate:            rec.DueDate,
		CancellationReason: rec.CancellationReason,
	}
}

type AccountReadStore struct{ store *Store }

func NewAccountReadStore(store *Store) *AccountReadStore { return &AccountReadStore{store: store} }

func (r *AccountReadStore) CurrentBalance(_ context.Context, clientID uuid.UUID) (decimal.Decimal, error) {
	balance := decimal.Zero
	for _, rec := range r.sorted(clientID) {
		if rec.Status == ledger.StatusCompleted {
			balance = rec.Balance
			break
		}
	}
	return balance, nil
}

func (r *AccountReadStore) CountMovements(_ context.Context, clientID uuid.UUID) (int64, error) {
	return int64(len(r.sorted(clientID))), nil
}

func (r *AccountReadStore) ListMovements(_ context.Context, clientID uuid.UUID, limit, offset int) ([]*queries.MovementView, error) {
	recs := r.sorted(clientID)
	if offset >= len(recs) {
		return []*queries.MovementView{}, nil
	}
	recs = recs[offset:]
	if len(recs) > limit {
		recs = recs[:limit]
	}

	views := make([]*queries.MovementView, len(recs))
	for i, rec := range recs {
		views[i] = &queries.MovementView{
			ID:          rec.ID,
			Type:        string(rec.Type),
			Amount:      rec.Amount,
			Balance:     rec.Balance,
			Status:      string(rec.Status),
			Reference:   rec.Reference,
			Description: rec.Description,
			Metadata:    rec.Metadata,
			ReversalOf:  rec.ReversalOf,
			CreatedAt:   rec.CreatedAt,
		}
	}
	return views, nil
}

// sorted returns the client's movements newest first.
func (r *AccountReadStore) sorted(clientID uuid.UUID) []ledger.Record {
	var recs []ledger.Record
	r.store.read(func(st *state) {
		for _, rec := range st.movements {
			if rec.ClientID == clientID {
				recs = append(recs, rec)
			}
		}
	})
	slices.SortFunc(recs, func(a, b ledger.Record) int {
		return -compareKey(a.CreatedAt, a.ID, b.CreatedAt, b.ID)
	})
	return recs
}

func compareKey(at time.Time, id uuid.UUID, bt time.Time, bid uuid.UUID) int {
	if c := at.Compare(bt); c != 0 {
		return c
	}
	return compareUUID(id, bid)
}
