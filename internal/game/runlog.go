package game

import "log/slog"

// RunLog records statistics gathered during one run.
type RunLog struct {
	RoomsReached   int
	TurnsPlayed    int
	MonstersKilled int
	PowerUpsUsed   int
	DamageTaken    int
	CauseOfDeath   string // "spike" or "monster"; empty while alive
}

// logRun writes the finished run to the logger as one record.
func logRun(rl RunLog, score int, reason string, logger *slog.Logger) {
	logger.Info("run: ended",
		"reason", reason,
		"score", score,
		"rooms", rl.RoomsReached,
		"turns", rl.TurnsPlayed,
		"kills", rl.MonstersKilled,
		"powerups_used", rl.PowerUpsUsed,
		"damage_taken", rl.DamageTaken,
		"cause_of_death", rl.CauseOfDeath,
	)
}
