package maplestory

import "github.com/gamescope/nexctl/nexon"

// CharacterBasic holds the basic profile of a MapleStory character.
type CharacterBasic struct {
	nexon.ExtraFields

	Date                string `json:"date"`
	CharacterName       string `json:"character_name"`
	WorldName           string `json:"world_name"`
	CharacterGender     string `json:"character_gender"`
	CharacterClass      string `json:"character_class"`
	CharacterClassLevel string `json:"character_class_level"`
	CharacterLevel      int    `json:"character_level"`
	CharacterExp        int64  `json:"character_exp"`
	CharacterExpRate    string `json:"character_exp_rate"`
	CharacterGuildName  string `json:"character_guild_name"`
	CharacterImage      string `json:"character_image"`
}

// CharacterBasicSchema describes the maplestory/v1/character/basic payload.
var CharacterBasicSchema = &nexon.ModelSchema{
	Name: "maplestory.CharacterBasic",
	Fields: []nexon.Field{
		{Name: "date", Shape: nexon.String()},
		{Name: "character_name", Required: true, Shape: nexon.String()},
		{Name: "world_name", Required: true, Shape: nexon.String()},
		{Name: "character_gender", Shape: nexon.String()},
		{Name: "character_class", Required: true, Shape: nexon.String()},
		{Name: "character_class_level", Shape: nexon.String()},
		{Name: "character_level", Required: true, Shape: nexon.Int()},
		{Name: "character_exp", Shape: nexon.Int()},
		{Name: "character_exp_rate", Shape: nexon.String()},
		{Name: "character_guild_name", Shape: nexon.String()},
		{Name: "character_image", Shape: nexon.String()},
	},
}

// CharacterBasicShape is the shape for character basic responses.
var CharacterBasicShape = nexon.Model(CharacterBasicSchema)

// Popularity holds a character's popularity snapshot.
type Popularity struct {
	nexon.ExtraFields

	Date       string `json:"date"`
	Popularity int    `json:"popularity"`
}

// PopularitySchema describes the maplestory/v1/character/popularity payload.
var PopularitySchema = &nexon.ModelSchema{
	Name: "maplestory.Popularity",
	Fields: []nexon.Field{
		{Name: "date", Shape: nexon.String()},
		{Name: "popularity", Required: true, Shape: nexon.Int()},
	},
}

// PopularityShape is the shape for popularity responses.
var PopularityShape = nexon.Model(PopularitySchema)

// RankingEntry is one row of the overall ranking.
type RankingEntry struct {
	Date                string `json:"date"`
	Ranking             int    `json:"ranking"`
	CharacterName       string `json:"character_name"`
	WorldName           string `json:"world_name"`
	ClassName           string `json:"class_name"`
	SubClassName        string `json:"sub_class_name"`
	CharacterLevel      int    `json:"character_level"`
	CharacterExp        int64  `json:"character_exp"`
	CharacterPopularity int    `json:"character_popularity"`
	CharacterGuildName  string `json:"character_guildname"`
}

// RankingEntrySchema describes one ranking row.
var RankingEntrySchema = &nexon.ModelSchema{
	Name: "maplestory.RankingEntry",
	Fields: []nexon.Field{
		{Name: "date", Shape: nexon.String()},
		{Name: "ranking", Required: true, Shape: nexon.Int()},
		{Name: "character_name", Required: true, Shape: nexon.String()},
		{Name: "world_name", Required: true, Shape: nexon.String()},
		{Name: "class_name", Shape: nexon.String()},
		{Name: "sub_class_name", Shape: nexon.String()},
		{Name: "character_level", Required: true, Shape: nexon.Int()},
		{Name: "character_exp", Shape: nexon.Int()},
		{Name: "character_popularity", Shape: nexon.Int()},
		{Name: "character_guildname", Aliases: []string{"character_guild_name"}, Shape: nexon.String()},
	},
}

// RankingPage is the envelope the ranking endpoint returns.
type RankingPage struct {
	Ranking []RankingEntry `json:"ranking"`
}

// RankingPageSchema describes the maplestory/v1/ranking/overall payload.
var RankingPageSchema = &nexon.ModelSchema{
	Name: "maplestory.RankingPage",
	Fields: []nexon.Field{
		{Name: "ranking", Required: true, Shape: nexon.SequenceOf(nexon.Model(RankingEntrySchema))},
	},
}

// RankingPageShape is the shape for ranking responses.
var RankingPageShape = nexon.Model(RankingPageSchema)
