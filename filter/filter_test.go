package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamescope/nexctl/maplestory"
)

func sampleEntries() []maplestory.RankingEntry {
	return []maplestory.RankingEntry{
		{Ranking: 1, CharacterName: "Luna", WorldName: "Scania", ClassName: "Magician", CharacterLevel: 290, CharacterGuildName: "Moon"},
		{Ranking: 2, CharacterName: "Sol", WorldName: "Bera", ClassName: "Warrior", CharacterLevel: 250},
		{Ranking: 3, CharacterName: "Stella", WorldName: "Scania", ClassName: "Bowman", CharacterLevel: 210},
	}
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{"valid comparison", "CharacterLevel >= 250", false},
		{"valid helper call", "contains(WorldName, 'scania')", false},
		{"empty expression", "   ", true},
		{"syntax error", "CharacterLevel >=", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.expression)
			if tt.wantErr {
				var compErr *CompilationError
				require.ErrorAs(t, err, &compErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		want       []string
	}{
		{"level threshold", "CharacterLevel >= 250", []string{"Luna", "Sol"}},
		{"world match is case-insensitive", "contains(WorldName, 'SCANIA')", []string{"Luna", "Stella"}},
		{"combined", "CharacterLevel > 200 and ClassName == 'Warrior'", []string{"Sol"}},
		{"guild presence", "CharacterGuildName != ''", []string{"Luna"}},
		{"top n", "Ranking <= 2", []string{"Luna", "Sol"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			matched, err := f.Apply(sampleEntries())
			require.NoError(t, err)

			var names []string
			for _, entry := range matched {
				names = append(names, entry.CharacterName)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestExpression(t *testing.T) {
	f, err := Compile("  Ranking == 1 ")
	require.NoError(t, err)
	assert.Equal(t, "Ranking == 1", f.Expression())
}
