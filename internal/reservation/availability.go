package reservation

import "time"

// SlotState classifies one hour slot of a room's day.
type SlotState string

const (
	// SlotAvailable: no overlapping reservation.
	SlotAvailable SlotState = "available"
	// SlotShared: at least one shared reservation overlaps, occupancy below capacity.
	SlotShared SlotState = "shared"
	// SlotBlocked: a private reservation overlaps, or occupancy reached capacity.
	SlotBlocked SlotState = "blocked"
)

// RoomStatus is the per-room summary over a whole day (or a single hour when
// an hour filter is applied).
type RoomStatus string

const (
	RoomAvailable RoomStatus = "available"
	RoomPartial   RoomStatus = "partial"
	RoomPrivate   RoomStatus = "private"
	RoomFull      RoomStatus = "full"
)

// HourSlot is the classification of one slot of the grid.
type HourSlot struct {
	Hour      int
	State     SlotState
	Occupancy int  // overlapping non-expired reservations
	Private   bool // blocked by a private reservation
}

// Usable reports whether a new shared reservation could still join this slot.
func (s HourSlot) Usable() bool {
	return s.State != SlotBlocked
}

// DayAvailability is the availability summary for one room and day, derived
// from a snapshot of its non-terminal reservations. Never persisted.
type DayAvailability struct {
	Status RoomStatus
	Slots  []HourSlot
}

// Usable reports whether any slot can still take a shared booking.
func (a DayAvailability) Usable() bool {
	for _, s := range a.Slots {
		if s.Usable() {
			return true
		}
	}
	return false
}

// ClassifySlot classifies the [slotStart, slotEnd) interval against a
// snapshot of reservations. Expired reservations never count.
func ClassifySlot(slotStart, slotEnd time.Time, capacity int, snapshot []*Reservation) HourSlot {
	slot := HourSlot{Hour: slotStart.Hour()}

	for _, r := range snapshot {
		if !r.Occupies() {
			continue
		}
		if !r.OverlapsInterval(slotStart, slotEnd) {
			continue
		}
		slot.Occupancy++
		if r.IsPrivate {
			slot.Private = true
		}
	}

	switch {
	case slot.Private:
		slot.State = SlotBlocked
	case slot.Occupancy >= capacity:
		slot.State = SlotBlocked
	case slot.Occupancy > 0:
		slot.State = SlotShared
	default:
		slot.State = SlotAvailable
	}
	return slot
}

// ComputeDayAvailability partitions the fixed slot grid of day into
// available / shared / blocked slots, given the room's capacity and a
// snapshot of its reservations. When hour is non-nil the grid is reduced to
// that single slot. Pure function of its inputs.
func ComputeDayAvailability(capacity int, day time.Time, snapshot []*Reservation, hour *int, loc *time.Location) DayAvailability {
	var slots []HourSlot

	if hour != nil {
		start, end := SlotBounds(day, *hour, loc)
		slots = []HourSlot{ClassifySlot(start, end, capacity, snapshot)}
	} else {
		slots = make([]HourSlot, 0, SlotsPerDay)
		for _, h := range GridHours() {
			start, end := SlotBounds(day, h, loc)
			slots = append(slots, ClassifySlot(start, end, capacity, snapshot))
		}
	}

	return DayAvailability{
		Status: summarize(slots),
		Slots:  slots,
	}
}

// summarize derives the room-level status from the slot classifications.
// Shared wins over available so the dashboard surfaces partial occupancy;
// a fully blocked day reports private when a private hold is the cause.
func summarize(slots []HourSlot) RoomStatus {
	anyAvailable := false
	anyShared := false
	anyPrivate := false

	for _, s := range slots {
		switch s.State {
		case SlotAvailable:
			anyAvailable = true
		case SlotShared:
			anyShared = true
		case SlotBlocked:
			if s.Private {
				anyPrivate = true
			}
		}
	}

	switch {
	case anyShared:
		return RoomPartial
	case anyAvailable:
		return RoomAvailable
	case anyPrivate:
		return RoomPrivate
	default:
		return RoomFull
	}
}
