package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	game          string
	characterName string
	worldName     string
)

// characterCmd represents the character command
var characterCmd = &cobra.Command{
	Use:   "character",
	Short: "Look up a character's basic profile",
	Long: `Resolve a character name to its ocid and fetch the basic profile.

The --game flag selects which game's endpoints are queried. HIT2 lookups
additionally require --world.`,
	RunE: runCharacter,
}

func init() {
	rootCmd.AddCommand(characterCmd)

	characterCmd.Flags().StringVarP(&game, "game", "g", "maplestory", "game to query (maplestory/hit2)")
	characterCmd.Flags().StringVarP(&characterName, "name", "n", "", "character name (required)")
	characterCmd.Flags().StringVarP(&worldName, "world", "w", "", "world name (hit2 only)")
	characterCmd.MarkFlagRequired("name")
}

func runCharacter(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	switch game {
	case "maplestory":
		return runMapleCharacter(ctx)
	case "hit2":
		return runHit2Character(ctx)
	default:
		return fmt.Errorf("unknown game: %s (must be 'maplestory' or 'hit2')", game)
	}
}

func runMapleCharacter(ctx context.Context) error {
	logger.Info().Str("character", characterName).Msg("Looking up MapleStory character")

	ocid, err := mapleClient.GetOcid(ctx, characterName, nil)
	if err != nil {
		return fmt.Errorf("failed to resolve character: %w", err)
	}

	basic, err := mapleClient.GetCharacterBasic(ctx, ocid, nil)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", basic.CharacterName, basic.WorldName)
	fmt.Printf("  Class: %s\n", basic.CharacterClass)
	fmt.Printf("  Level: %d\n", basic.CharacterLevel)
	if basic.CharacterGuildName != "" {
		fmt.Printf("  Guild: %s\n", basic.CharacterGuildName)
	}
	if basic.CharacterExpRate != "" {
		fmt.Printf("  Exp: %d (%s%%)\n", basic.CharacterExp, basic.CharacterExpRate)
	}

	return nil
}

func runHit2Character(ctx context.Context) error {
	if worldName == "" {
		return fmt.Errorf("--world is required for hit2 lookups")
	}

	logger.Info().Str("character", characterName).Str("world", worldName).Msg("Looking up HIT2 character")

	ocid, err := hit2Client.GetOcid(ctx, worldName, characterName, nil)
	if err != nil {
		return fmt.Errorf("failed to resolve character: %w", err)
	}

	basic, err := hit2Client.GetCharacterBasic(ctx, ocid, nil)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", basic.CharacterName, basic.ServerName)
	fmt.Printf("  Class: %s (%s)\n", basic.CharacterClassName, basic.CharacterClassGroupName)
	fmt.Printf("  Level: %d\n", basic.CharacterLevel)
	fmt.Printf("  Created: %s\n", basic.CharacterDateCreate)
	fmt.Printf("  Last login: %s\n", basic.CharacterDateLastLogin)

	return nil
}
