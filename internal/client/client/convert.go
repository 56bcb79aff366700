package client

import (
	"time"

	"github.com/dmitrijs2005/ecotracker/internal/emission"
	"github.com/dmitrijs2005/ecotracker/internal/footprint"
	pb "github.com/dmitrijs2005/ecotracker/internal/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// asTime converts t, keeping an unset timestamp as the zero time.
func asTime(t *timestamppb.Timestamp) time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.AsTime()
}

func fromPBEntry(e *pb.Entry) Entry {
	return Entry{
		ID:           e.GetId(),
		Category:     e.GetCategory(),
		OccurredAt:   asTime(e.GetOccurredAt()),
		CO2Emissions: e.GetCo2Emissions(),
		CO2Offset:    e.GetCo2Offset(),
		EcoPoints:    int(e.GetEcoPoints()),
		Details:      e.GetDetails(),
		CreatedAt:    asTime(e.GetCreatedAt()),
	}
}

func fromPBDashboard(d *pb.Dashboard) footprint.Dashboard {
	s, st := d.GetSummary(), d.GetStatus()
	return footprint.Dashboard{
		Summary: footprint.Summary{
			TotalEmissions: s.GetTotalEmissions(),
			TotalOffsets:   s.GetTotalOffsets(),
			NetFootprint:   s.GetNetFootprint(),
			EcoPoints:      int(s.GetEcoPoints()),
			EntriesCount:   int(s.GetEntriesCount()),
			TreesPlanted:   int(s.GetTreesPlanted()),
		},
		Status: footprint.Status{
			Level:    footprint.Level(st.GetLevel()),
			Label:    st.GetLabel(),
			Message:  st.GetMessage(),
			Congrats: st.GetCongrats(),
		},
	}
}

func fromPBProfile(p *pb.GetProfileResponse) *Profile {
	out := &Profile{
		UserID:      p.GetUserId(),
		Username:    p.GetUsername(),
		MemberSince: asTime(p.GetMemberSince()),
		Dashboard:   fromPBDashboard(p.GetDashboard()),
	}
	for _, c := range p.GetByCategory() {
		out.ByCategory = append(out.ByCategory, footprint.CategoryTotal{
			Category:     emission.Category(c.GetCategory()),
			Entries:      int(c.GetEntries()),
			CO2Emissions: c.GetCo2Emissions(),
			CO2Offset:    c.GetCo2Offset(),
		})
	}
	return out
}

func fromPBSuggestions(r *pb.GetSuggestionsResponse) footprint.Suggestions {
	out := footprint.Suggestions{
		TreesToOffset: int(r.GetTreesToOffset()),
		CO2:           r.GetCo2(),
	}
	for _, it := range r.GetSuggestions() {
		out.Items = append(out.Items, footprint.Suggestion{
			Title:       it.GetTitle(),
			Description: it.GetDescription(),
			ImpactKgCO2: it.GetImpactKgCo2(),
			Action:      it.GetAction(),
		})
	}
	return out
}
