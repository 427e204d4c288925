package schedule

// CandidateSlots derives the ordered list of bookable start times from a
// rule. The cursor starts at the window opening and advances by slot
// duration plus break. The close check includes the break allowance: each
// emitted slot leaves room for duration plus break before the next, so the
// final slot only has to fit its duration within end plus break. A
// 09:00-12:00 window with 30-minute slots and 10-minute breaks therefore
// ends on 11:40, not 11:00. Output depends on the rule alone, never on
// existing bookings.
func CandidateSlots(r *Rule) []string {
	if r == nil || !r.enabled {
		return nil
	}

	slots := make([]string, 0, (r.endMinutes-r.startMinutes)/r.slotDurationMin+1)
	for cursor := r.startMinutes; cursor+r.slotDurationMin <= r.endMinutes+r.breakBetweenMin; cursor += r.slotDurationMin + r.breakBetweenMin {
		slots = append(slots, FormatTimeOfDay(cursor))
	}
	return slots
}
