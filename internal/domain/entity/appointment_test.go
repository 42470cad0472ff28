package entity

import "testing"

func TestCanTransitionTo(t *testing.T) {
	statuses := []AppointmentStatus{
		AppointmentStatusPending,
		AppointmentStatusConfirmed,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
	}

	allowed := map[AppointmentStatus]map[AppointmentStatus]bool{
		AppointmentStatusPending: {
			AppointmentStatusConfirmed: true,
			AppointmentStatusCancelled: true,
		},
		AppointmentStatusConfirmed: {
			AppointmentStatusCompleted: true,
			AppointmentStatusCancelled: true,
		},
	}

	// Exhaustive over every (from, to) pair; anything not in the table
	// must be rejected, including self-transitions and moves out of the
	// terminal states.
	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[from][to]
			if got := from.CanTransitionTo(to); got != want {
				t.Fatalf("CanTransitionTo(%q -> %q)=%v, want %v", from, to, got, want)
			}
		}
	}

	if AppointmentStatusPending.CanTransitionTo("finished") {
		t.Fatal("unknown target status must be rejected")
	}
	if AppointmentStatus("unknown").CanTransitionTo(AppointmentStatusConfirmed) {
		t.Fatal("unknown source status must be rejected")
	}
}

func TestIsTerminal(t *testing.T) {
	cases := []struct {
		status   AppointmentStatus
		terminal bool
	}{
		{AppointmentStatusPending, false},
		{AppointmentStatusConfirmed, false},
		{AppointmentStatusCompleted, true},
		{AppointmentStatusCancelled, true},
	}

	for _, tt := range cases {
		if got := tt.status.IsTerminal(); got != tt.terminal {
			t.Fatalf("IsTerminal(%q)=%v, want %v", tt.status, got, tt.terminal)
		}
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range []AppointmentStatus{
		AppointmentStatusPending, AppointmentStatusConfirmed,
		AppointmentStatusCompleted, AppointmentStatusCancelled,
	} {
		if !s.IsValid() {
			t.Fatalf("IsValid(%q)=false, want true", s)
		}
	}
	if AppointmentStatus("done").IsValid() {
		t.Fatal(`IsValid("done")=true, want false`)
	}
}

func TestPhotoKindIsValid(t *testing.T) {
	if !PhotoKindBefore.IsValid() || !PhotoKindAfter.IsValid() {
		t.Fatal("before/after must be valid photo kinds")
	}
	if PhotoKind("during").IsValid() {
		t.Fatal(`IsValid("during")=true, want false`)
	}
}

func TestPhotosOfKind(t *testing.T) {
	appt := &Appointment{
		Photos: []AppointmentPhoto{
			{Kind: PhotoKindBefore, URL: "b1"},
			{Kind: PhotoKindAfter, URL: "a1"},
			{Kind: PhotoKindBefore, URL: "b2"},
		},
	}

	before := appt.PhotosOfKind(PhotoKindBefore)
	if len(before) != 2 || before[0].URL != "b1" || before[1].URL != "b2" {
		t.Fatalf("PhotosOfKind(before)=%+v, want b1,b2 in order", before)
	}
	if after := appt.PhotosOfKind(PhotoKindAfter); len(after) != 1 {
		t.Fatalf("PhotosOfKind(after) returned %d photos, want 1", len(after))
	}
}
