package model

// Scenario is one canned roleplay scenario. MinLevel is the easiest CEFR
// level the scenario is offered at.
type Scenario struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"size:128" json:"title"`
	Scenario  string `gorm:"type:text" json:"scenario"`
	Character string `gorm:"size:255" json:"character"`
	Setting   string `gorm:"size:255" json:"setting"`
	MinLevel  string `gorm:"size:4;index" json:"minLevel"`
}

// Tip is one study tip shown to the learner.
type Tip struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Text string `gorm:"type:text" json:"text"`
}
