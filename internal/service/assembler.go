package service

import (
	"log/slog"

	"reeldine/internal/api/dto"
	"reeldine/internal/model"
	"reeldine/internal/pkg/geo"

	"github.com/jinzhu/copier"
)

func toUserSummaryDTO(user *model.User) *dto.UserSummaryDTO {
	out := &dto.UserSummaryDTO{}
	if err := copier.Copy(out, user); err != nil {
		slog.Warn("copy user summary", "error", err)
	}
	out.Cuisines = user.Preferences.Cuisines
	return out
}

func toPartnerSummaryDTO(partner *model.FoodPartner) *dto.PartnerSummaryDTO {
	out := &dto.PartnerSummaryDTO{}
	if err := copier.Copy(out, partner); err != nil {
		slog.Warn("copy partner summary", "error", err)
	}
	return out
}

func toPartnerSearchItemDTO(partner *model.FoodPartner, center *geo.Point) *dto.PartnerSearchItemDTO {
	out := &dto.PartnerSearchItemDTO{}
	if err := copier.Copy(out, partner); err != nil {
		slog.Warn("copy partner item", "error", err)
	}
	out.Location = [2]float64{partner.LocationLng, partner.LocationLat}
	if center != nil {
		d := geo.Haversine(*center, geo.Point{Lng: partner.LocationLng, Lat: partner.LocationLat})
		out.Distance = &d
	}
	return out
}

func toFoodDTO(food *model.Food, center *geo.Point) *dto.FoodDTO {
	out := &dto.FoodDTO{}
	if err := copier.Copy(out, food); err != nil {
		slog.Warn("copy food", "error", err)
	}
	out.Location = [2]float64{food.LocationLng, food.LocationLat}
	out.EngagementScore = food.EngagementScore()
	out.Tags = make([]string, 0, len(food.Tags))
	for _, t := range food.Tags {
		out.Tags = append(out.Tags, t.Tag)
	}
	if food.Partner.ID != 0 {
		out.FoodPartner = toPartnerSummaryDTO(&food.Partner)
	}
	if center != nil {
		d := geo.Haversine(*center, geo.Point{Lng: food.LocationLng, Lat: food.LocationLat})
		out.Distance = &d
	}
	return out
}

func toFoodDTOs(foods []*model.Food, center *geo.Point) []*dto.FoodDTO {
	out := make([]*dto.FoodDTO, 0, len(foods))
	for _, f := range foods {
		out = append(out, toFoodDTO(f, center))
	}
	return out
}

func toCommentDTO(comment *model.Comment) *dto.CommentDTO {
	out := &dto.CommentDTO{}
	if err := copier.Copy(out, comment); err != nil {
		slog.Warn("copy comment", "error", err)
	}
	if comment.User.ID != 0 {
		out.User = toUserSummaryDTO(&comment.User)
	}
	return out
}
