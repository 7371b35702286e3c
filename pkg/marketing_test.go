package pkg

import (
	"testing"

	"github.com/hansbonini/parktools/pkg/park"
)

func TestExportMarketingCampaigns(t *testing.T) {
	e := NewS6Exporter()
	e.exportMarketingCampaigns([]park.MarketingCampaign{
		{Type: CampaignRide, RideIndex: 4, WeeksLeft: 3},
		{Type: CampaignFoodOrDrinkFree, RideIndex: 9, ShopItemType: 21, WeeksLeft: 2},
		{Type: 99, WeeksLeft: 1},
	})

	if got := e.Data.Research.CampaignWeeksLeft[CampaignRide]; got != 3|0x80 {
		t.Errorf("ride campaign weeks = 0x%02X, want 0x83", got)
	}
	if got := e.Data.Research.CampaignRideIndex[CampaignRide]; got != 4 {
		t.Errorf("ride campaign index = %d, want 4", got)
	}

	// The shared index slot carries the shop item type, not a ride
	if got := e.Data.Research.CampaignRideIndex[CampaignFoodOrDrinkFree]; got != 21 {
		t.Errorf("food campaign item = %d, want 21", got)
	}

	// Inactive slots stay zero, out of range campaigns are skipped
	if got := e.Data.Research.CampaignWeeksLeft[0]; got != 0 {
		t.Errorf("inactive campaign weeks = 0x%02X, want 0", got)
	}
}
