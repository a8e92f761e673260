package wincon

import "nightfall/internal/engine"

// Register wires every win condition in this package into kinds under the
// string keys open_mafia_engine's wincon.py uses, so a Prefab can name them
// directly. Targets are declared by faction name (params["targets"], a
// list of strings) and resolved to ids at build time, since the prefab
// author doesn't know faction ids in advance.
func Register(kinds *engine.KindRegistries) {
	kinds.RegisterWinCondition("alignments_eliminated", buildAlignmentEliminated)
	kinds.RegisterWinCondition("alignments_majority", buildAlignmentMajority)
	kinds.RegisterWinCondition("survival", buildSurvival)
}

func buildAlignmentEliminated(g *engine.Game, factionID int, params map[string]any) (engine.OutcomeChecker, error) {
	targets, err := resolveFactionNames(g, params, "targets")
	if err != nil {
		return nil, err
	}
	return NewAlignmentEliminated(g.NewObjectID(), factionID, targets), nil
}

func buildAlignmentMajority(g *engine.Game, factionID int, params map[string]any) (engine.OutcomeChecker, error) {
	targets, err := resolveFactionNames(g, params, "targets")
	if err != nil {
		return nil, err
	}
	return NewAlignmentMajority(g.NewObjectID(), factionID, targets), nil
}

func buildSurvival(g *engine.Game, factionID int, params map[string]any) (engine.OutcomeChecker, error) {
	return NewSurvival(g.NewObjectID(), factionID), nil
}

// resolveFactionNames reads params[key] as a list of faction names and
// resolves each to its faction id via the game's name registry. A missing
// key returns nil, nil -- the checker then has no targets, which
// AlignmentEliminated/AlignmentMajority treat as "never fires" rather than
// as an error.
func resolveFactionNames(g *engine.Game, params map[string]any, key string) ([]int, error) {
	raw, ok := params[key]
	if !ok {
		return nil, nil
	}
	names, ok := raw.([]string)
	if !ok {
		anyList, ok := raw.([]any)
		if !ok {
			return nil, &engine.EngineBug{Msg: "win condition param " + key + " is not a list of faction names"}
		}
		for _, v := range anyList {
			name, ok := v.(string)
			if !ok {
				return nil, &engine.EngineBug{Msg: "win condition param " + key + " contains a non-string entry"}
			}
			names = append(names, name)
		}
	}
	out := make([]int, 0, len(names))
	for _, name := range names {
		f, ok := g.FactionByName(name)
		if !ok {
			return nil, &engine.EngineBug{Msg: "win condition param " + key + " names unknown faction " + name}
		}
		out = append(out, f.ID())
	}
	return out, nil
}
