package prefab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"nightfall/internal/engine"
	"nightfall/internal/roles"
	"nightfall/internal/wincon"
)

const vanillaYAML = `
name: vanilla
factions:
  - name: town
    win_condition: alignments_eliminated
    win_condition_params:
      targets: [mafia]
  - name: mafia
    win_condition: alignments_majority
    win_condition_params:
      targets: [mafia]
roles:
  - name: citizen
    faction: town
    abilities:
      - kind: lynch_vote
        params:
          tally_key: day_tally
  - name: mafioso
    faction: mafia
    abilities:
      - kind: lynch_vote
        params:
          tally_key: day_tally
      - kind: mafia_kill
variants:
  4: [citizen, citizen, citizen, mafioso]
`

func TestFromYAML_ParsesAndValidates(t *testing.T) {
	p, err := FromYAML([]byte(vanillaYAML))
	require.NoError(t, err)
	require.Equal(t, "vanilla", p.Name)
	require.Len(t, p.Factions, 2)
	require.Equal(t, []string{"citizen", "citizen", "citizen", "mafioso"}, p.Variants[4])

	kinds := engine.NewKindRegistries()
	roles.Register(kinds)
	wincon.Register(kinds)
	require.NoError(t, p.Validate(kinds))
}

func TestLoadYAML_RoundTripsThroughDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vanilla.yml")
	require.NoError(t, os.WriteFile(path, []byte(vanillaYAML), 0o644))

	p, err := LoadYAML(path)
	require.NoError(t, err)
	require.Equal(t, "vanilla", p.Name)

	data, err := p.ToYAML()
	require.NoError(t, err)

	p2, err := FromYAML(data)
	require.NoError(t, err)
	require.Equal(t, p.Name, p2.Name)
	require.Equal(t, p.Variants, p2.Variants)
}

func TestValidate_RejectsUnknownAbilityKind(t *testing.T) {
	p := &Prefab{
		Name:     "bad",
		Factions: []FactionSpec{{Name: "town", WinCondition: "alignments_eliminated"}},
		Roles: []RoleSpec{
			{Name: "citizen", Faction: "town", Abilities: []AbilitySpec{{Kind: "nonexistent"}}},
		},
	}
	kinds := engine.NewKindRegistries()
	roles.Register(kinds)
	wincon.Register(kinds)

	err := p.Validate(kinds)
	require.Error(t, err)
	var unknown *engine.UnknownKind
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "ability", unknown.Registry)
}

func TestValidate_RejectsVariantNamingUnknownRole(t *testing.T) {
	p := &Prefab{
		Name:     "bad",
		Factions: []FactionSpec{{Name: "town", WinCondition: "alignments_eliminated"}},
		Roles:    []RoleSpec{{Name: "citizen", Faction: "town"}},
		Variants: map[int][]string{4: {"citizen", "ghost"}},
	}
	kinds := engine.NewKindRegistries()
	roles.Register(kinds)
	wincon.Register(kinds)

	err := p.Validate(kinds)
	require.Error(t, err)
}
