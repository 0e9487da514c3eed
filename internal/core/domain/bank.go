package domain

import "time"

// BloodStock tracks available units per blood group.
type BloodStock struct {
	APos  int `json:"A_pos" bson:"a_pos"`
	ANeg  int `json:"A_neg" bson:"a_neg"`
	BPos  int `json:"B_pos" bson:"b_pos"`
	BNeg  int `json:"B_neg" bson:"b_neg"`
	ABPos int `json:"AB_pos" bson:"ab_pos"`
	ABNeg int `json:"AB_neg" bson:"ab_neg"`
	OPos  int `json:"O_pos" bson:"o_pos"`
	ONeg  int `json:"O_neg" bson:"o_neg"`
}

// TotalUnits sums the stock across all blood groups.
func (s BloodStock) TotalUnits() int {
	return s.APos + s.ANeg + s.BPos + s.BNeg + s.ABPos + s.ABNeg + s.OPos + s.ONeg
}

// BankCampaign is a drive embedded in a blood bank record.
type BankCampaign struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

// BloodBank is a registered blood bank with its current stock and any
// drives it runs.
type BloodBank struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email,omitempty"`
	City      string         `json:"city"`
	Stock     BloodStock     `json:"bloodStock"`
	Campaigns []BankCampaign `json:"campaigns"`
	CreatedAt time.Time      `json:"createdAt"`
}
