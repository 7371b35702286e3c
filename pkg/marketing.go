package pkg

import (
	"github.com/hansbonini/parktools/pkg/common"
	"github.com/hansbonini/parktools/pkg/park"
)

// exportMarketingCampaigns writes the campaign tables. An active
// campaign stores its remaining weeks with the top bit set. Campaigns
// advertising a single ride store the ride index in the shared index
// slot; the free food or drink campaign stores the shop item type
// there instead.
func (e *S6Exporter) exportMarketingCampaigns(campaigns []park.MarketingCampaign) {
	weeks := e.Data.Research.CampaignWeeksLeft[:]
	rides := e.Data.Research.CampaignRideIndex[:]
	for i := range weeks {
		weeks[i] = 0
	}
	for i := range rides {
		rides[i] = 0
	}
	for _, campaign := range campaigns {
		if campaign.Type < 0 || campaign.Type >= CampaignTypeCount {
			common.LogWarn(common.WarnCampaignTypeOutOfRange, campaign.Type)
			continue
		}
		weeks[campaign.Type] = common.SafeIntToUint8(campaign.WeeksLeft) | 0x80
		switch campaign.Type {
		case CampaignRideFree, CampaignRide:
			rides[campaign.Type] = common.SafeIntToUint8(campaign.RideIndex)
		case CampaignFoodOrDrinkFree:
			rides[campaign.Type] = common.SafeIntToUint8(campaign.ShopItemType)
		}
	}
}
