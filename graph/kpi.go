package graph

import (
	"errors"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/lumicoach/coaching-api/db"
	"github.com/lumicoach/coaching-api/models"
)

// resolveKPIRecords returns the viewer's own records; admins may query any
// user via the userId argument.
func resolveKPIRecords(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := requireAuth(p.Context)
	if err != nil {
		return nil, err
	}

	userID := viewer.ID
	if raw, ok := p.Args["userId"]; ok && raw != nil {
		requested, err := parseID(raw)
		if err != nil {
			return nil, err
		}
		if requested != viewer.ID && viewer.Role != models.RoleAdmin {
			return nil, errors.New("Access denied")
		}
		userID = requested
	}

	var records []models.KPIRecord
	if err := db.DB.Where("user_id = ?", userID).Order("recorded_at desc").Find(&records).Error; err != nil {
		return nil, errors.New("Failed to fetch KPI records")
	}
	return records, nil
}

func resolveCreateKPIRecord(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := requireAuth(p.Context)
	if err != nil {
		return nil, err
	}

	userID := viewer.ID
	if raw, ok := p.Args["userId"]; ok && raw != nil {
		requested, err := parseID(raw)
		if err != nil {
			return nil, err
		}
		if requested != viewer.ID && viewer.Role != models.RoleAdmin {
			return nil, errors.New("Access denied")
		}
		userID = requested
	}

	var in kpiRecordInput
	if err := decodeInput(p.Args["input"], &in); err != nil {
		return nil, err
	}

	record := models.KPIRecord{
		UserID: userID,
		Metric: in.Metric,
		Value:  in.Value,
		Unit:   in.Unit,
		Notes:  in.Notes,
	}
	if in.RecordedAt != nil {
		record.RecordedAt = *in.RecordedAt
	} else {
		record.RecordedAt = time.Now()
	}
	if err := db.DB.Create(&record).Error; err != nil {
		return nil, errors.New("Failed to create KPI record")
	}
	return record, nil
}

func resolveDeleteKPIRecord(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := requireAuth(p.Context)
	if err != nil {
		return nil, err
	}

	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}

	var record models.KPIRecord
	if db.DB.First(&record, id).RowsAffected == 0 {
		return nil, errors.New("KPI record not found")
	}
	if record.UserID != viewer.ID && viewer.Role != models.RoleAdmin {
		return nil, errors.New("Access denied")
	}
	if err := db.DB.Delete(&record).Error; err != nil {
		return nil, errors.New("Failed to delete KPI record")
	}
	return true, nil
}
