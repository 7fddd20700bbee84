package hit2

import "github.com/gamescope/nexctl/nexon"

// CharacterBasic holds the basic profile of a HIT2 character.
type CharacterBasic struct {
	nexon.ExtraFields

	ServerName              string `json:"server_name"`
	CharacterName           string `json:"character_name"`
	CharacterDateCreate     string `json:"character_date_create"`
	CharacterDateLastLogin  string `json:"character_date_last_login"`
	CharacterDateLastLogout string `json:"character_date_last_logout"`
	CharacterClassGroupName string `json:"character_class_group_name"`
	CharacterClassName      string `json:"character_class_name"`
	CharacterLevel          int    `json:"character_level"`
}

// CharacterBasicSchema describes the hit2/v1/character/basic payload.
var CharacterBasicSchema = &nexon.ModelSchema{
	Name: "hit2.CharacterBasic",
	Fields: []nexon.Field{
		{Name: "server_name", Required: true, Shape: nexon.String()},
		{Name: "character_name", Required: true, Shape: nexon.String()},
		{Name: "character_date_create", Required: true, Shape: nexon.String()},
		{Name: "character_date_last_login", Required: true, Shape: nexon.String()},
		{Name: "character_date_last_logout", Required: true, Shape: nexon.String()},
		{Name: "character_class_group_name", Required: true, Shape: nexon.String()},
		{Name: "character_class_name", Required: true, Shape: nexon.String()},
		{Name: "character_level", Required: true, Shape: nexon.Int()},
	},
}

// CharacterBasicShape is the shape for character basic responses.
var CharacterBasicShape = nexon.Model(CharacterBasicSchema)
