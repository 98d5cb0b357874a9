package practice

// Messages internal to the practice screen. The controller is not
// goroutine-safe, so commands never touch it; they emit one of these
// and the mutation happens in Update, on the program loop.

// startSessionMsg kicks off card assembly for a fresh session.
type startSessionMsg struct{}

// feedbackDoneMsg ends the correct/incorrect flash after a grade.
type feedbackDoneMsg struct{}
