package main

import (
	"fmt"
	"os"

	"github.com/wieku/rplpa"

	"github.com/Givikap120/strainarchive/app/beatmap"
	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
)

// replayScore is the part of an .osr file that feeds pp
type replayScore struct {
	Mode beatmap.Mode
	Mods difficulty.Modifier
	Play Play
}

func loadReplay(path string) (replayScore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return replayScore{}, fmt.Errorf("read replay: %w", err)
	}

	replay, err := rplpa.ParseReplay(data)
	if err != nil {
		return replayScore{}, fmt.Errorf("parse replay %s: %w", path, err)
	}

	return scoreFromReplay(replay), nil
}

func scoreFromReplay(replay *rplpa.Replay) replayScore {
	play := NewPlay()

	play.Combo = int(replay.MaxCombo)
	play.Count300 = int(replay.Count300)
	play.Count100 = int(replay.Count100)
	play.Count50 = int(replay.Count50)
	play.CountGeki = int(replay.CountGeki)
	play.CountKatu = int(replay.CountKatu)
	play.Misses = int(replay.CountMiss)
	play.Score = float64(replay.Score)

	return replayScore{
		Mode: beatmap.Mode(replay.PlayMode),
		Mods: difficulty.Modifier(replay.Mods),
		Play: play,
	}
}
