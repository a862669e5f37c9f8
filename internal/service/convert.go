package service

import (
	"github.com/mmynk/groupsplit/internal/models"
	"github.com/mmynk/groupsplit/pkg/api"
)

func toAPIGroup(g *models.Group) *api.Group {
	return &api.Group{
		ID:        g.ID,
		Name:      g.Name,
		CreatedAt: g.CreatedAt,
	}
}

func toAPIMember(m *models.Member) *api.Member {
	return &api.Member{
		ID:        m.ID,
		GroupID:   m.GroupID,
		Name:      m.Name,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
	}
}

func toAPIExpense(e *models.Expense) *api.Expense {
	shares := make([]*api.ExpenseShare, len(e.Shares))
	for i, share := range e.Shares {
		shares[i] = &api.ExpenseShare{
			MemberID: share.MemberID,
			Share:    share.Share,
		}
	}

	return &api.Expense{
		ID:          e.ID,
		GroupID:     e.GroupID,
		PayerID:     e.PayerID,
		Amount:      e.Amount,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		Shares:      shares,
	}
}
