package game

// ItemType classifies item entities for equipment and stacking rules.
type ItemType int

const (
	ItemWeapon ItemType = iota
	ItemArmor
	ItemContainer
	ItemConsumable
	ItemTool
	ItemQuestItem
	ItemGold
	ItemJunk
)

// ItemData carries item-specific numbers for an Item entity. One row per
// item, keyed by the entity id.
type ItemData struct {
	ID       uint64 `json:"id"`
	EntityID uint64 `json:"entity_id"`

	Type ItemType `json:"type"`

	Quantity int `json:"quantity"`
	MaxStack int `json:"max_stack"`

	BaseDamage  int     `json:"base_damage,omitempty"`
	ArmorRating int     `json:"armor_rating,omitempty"`
	AttackSpeed float64 `json:"attack_speed,omitempty"`

	// InternalVolume and WeightReduction apply to containers.
	InternalVolume  float64 `json:"internal_volume,omitempty"`
	WeightReduction float64 `json:"weight_reduction,omitempty"`

	Durability    int `json:"durability"`
	MaxDurability int `json:"max_durability"`

	IsEquipped   bool   `json:"is_equipped,omitempty"`
	EquippedSlot string `json:"equipped_slot,omitempty"`
}

func (d *ItemData) RowID() uint64      { return d.ID }
func (d *ItemData) SetRowID(id uint64) { d.ID = id }
