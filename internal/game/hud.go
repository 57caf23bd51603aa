package game

// Placement is a hint for where a notification is drawn.
type Placement int

const (
	// PlacementCenter puts the message near the bottom center.
	PlacementCenter Placement = iota
	// PlacementTop puts the message near the top center.
	PlacementTop
)

// Notification is a timed string message the core emits for the UI layer.
type Notification struct {
	Text      string
	Remaining float64
	Placement Placement
}

const milestoneBannerDuration = 5.0

// UI owns the HUD animation state, the timed notification queue, and the
// milestone banner. It renders nothing itself; draw code reads it.
type UI struct {
	messages []Notification

	milestone      int // 0 = no banner
	milestoneTimer float64

	hudPulse float64 // 2-second cycle for the HUD glow
}

// NewUI creates an empty UI state.
func NewUI() *UI { return &UI{} }

// Update advances message timers, the milestone banner, and the HUD pulse.
func (u *UI) Update(dt float64) {
	kept := u.messages[:0]
	for i := range u.messages {
		u.messages[i].Remaining -= dt
		if u.messages[i].Remaining > 0 {
			kept = append(kept, u.messages[i])
		}
	}
	u.messages = kept

	if u.milestone > 0 {
		u.milestoneTimer += dt
		if u.milestoneTimer > milestoneBannerDuration {
			u.milestone = 0
			u.milestoneTimer = 0
		}
	}

	u.hudPulse += dt
	for u.hudPulse >= 2.0 {
		u.hudPulse -= 2.0
	}
}

// ShowMessage queues a timed notification.
func (u *UI) ShowMessage(text string, duration float64, placement Placement) {
	u.messages = append(u.messages, Notification{
		Text:      text,
		Remaining: duration,
		Placement: placement,
	})
}

// ShowMilestone displays the milestone banner for the given level.
func (u *UI) ShowMilestone(level int) {
	u.milestone = level
	u.milestoneTimer = 0
}

// Messages returns the live notifications. Callers must not mutate.
func (u *UI) Messages() []Notification { return u.messages }

// MilestoneBanner returns the active banner level (0 if none) and its age.
func (u *UI) MilestoneBanner() (int, float64) { return u.milestone, u.milestoneTimer }
