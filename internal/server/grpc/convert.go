package grpc

import (
	"github.com/dmitrijs2005/ecotracker/internal/footprint"
	pb "github.com/dmitrijs2005/ecotracker/internal/proto"
	"github.com/dmitrijs2005/ecotracker/internal/server/models"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func toPBEntry(e *models.Entry) *pb.Entry {
	return &pb.Entry{
		Id:           e.ID,
		Category:     e.Category,
		OccurredAt:   timestamppb.New(e.OccurredAt),
		Co2Emissions: e.CO2Emissions,
		Co2Offset:    e.CO2Offset,
		EcoPoints:    int64(e.EcoPoints),
		Details:      e.Details,
		CreatedAt:    timestamppb.New(e.CreatedAt),
	}
}

func toPBDashboard(d footprint.Dashboard) *pb.Dashboard {
	s := d.Summary
	return &pb.Dashboard{
		Summary: &pb.Summary{
			TotalEmissions: s.TotalEmissions,
			TotalOffsets:   s.TotalOffsets,
			NetFootprint:   s.NetFootprint,
			EcoPoints:      int64(s.EcoPoints),
			EntriesCount:   int64(s.EntriesCount),
			TreesPlanted:   int64(s.TreesPlanted),
		},
		Status: &pb.Status{
			Level:    string(d.Status.Level),
			Label:    d.Status.Label,
			Message:  d.Status.Message,
			Congrats: d.Status.Congrats,
		},
	}
}

func toPBCategoryTotals(totals []footprint.CategoryTotal) []*pb.CategoryTotal {
	out := make([]*pb.CategoryTotal, 0, len(totals))
	for _, c := range totals {
		out = append(out, &pb.CategoryTotal{
			Category:     string(c.Category),
			Entries:      int64(c.Entries),
			Co2Emissions: c.CO2Emissions,
			Co2Offset:    c.CO2Offset,
		})
	}
	return out
}

func toPBSuggestions(s footprint.Suggestions) *pb.GetSuggestionsResponse {
	resp := &pb.GetSuggestionsResponse{
		Suggestions:   make([]*pb.Suggestion, 0, len(s.Items)),
		TreesToOffset: int64(s.TreesToOffset),
		Co2:           s.CO2,
	}
	for _, it := range s.Items {
		resp.Suggestions = append(resp.Suggestions, &pb.Suggestion{
			Title:       it.Title,
			Description: it.Description,
			ImpactKgCo2: it.ImpactKgCO2,
			Action:      it.Action,
		})
	}
	return resp
}
