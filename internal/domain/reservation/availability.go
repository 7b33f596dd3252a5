package reservation

import "github.com/google/uuid"

// Occupancy is the minimal view of a reservation needed for overlap checks.
type Occupancy struct {
	ReservationID uuid.UUID
	RoomID        uuid.UUID
	Stay          DateRange
	Status        Status
}

// FirstConflict returns the first active occupancy of roomID overlapping stay,
// ignoring exclude. Storage adapters that cannot push the predicate down use it.
func FirstConflict(existing []Occupancy, roomID uuid.UUID, stay DateRange, exclude *uuid.UUID) (Occupancy, bool) {
	for _, o := range existing {
		if o.RoomID != roomID || !o.Status.IsActive() {
			continue
		}
		if exclude != nil && o.ReservationID == *exclude {
			continue
		}
		if o.Stay.Overlaps(stay) {
			return o, true
		}
	}
	return Occupancy{}, false
}

func (r *Reservation) Occupancy() Occupancy {
	return Occupancy{ReservationID: r.id, RoomID: r.roomID, Stay: r.stay, Status: r.status}
}
