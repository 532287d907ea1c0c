package referral

import (
	"github.com/clinicore/clinicore/internal/domain/record"
)

// Columns is the referrals.csv header.
var Columns = []string{
	"referral_id", "patient_id", "referring_clinician_id",
	"referred_to_clinician_id", "referring_facility_id",
	"referred_to_facility_id", "referral_date", "urgency_level", "referral_reason",
	"clinical_summary", "requested_investigations", "status",
	"appointment_id", "notes", "created_date", "last_updated",
}

// Schema describes referrals to the repository engine.
func Schema() record.Schema[Referral] {
	return record.Schema[Referral]{
		Entity:    "referral",
		IDPrefix:  "R",
		IDWidth:   3,
		Columns:   Columns,
		MinFields: len(Columns),
		ID:        func(r Referral) string { return r.ID },
		Decode: func(row *record.Row) Referral {
			return Referral{
				ID:                      row.Field(0),
				PatientID:               row.Field(1),
				ReferringClinicianID:    row.Field(2),
				ReferredToClinicianID:   row.Field(3),
				ReferringFacilityID:     row.Field(4),
				ReferredToFacilityID:    row.Field(5),
				Date:                    row.Date(6),
				UrgencyLevel:            row.Field(7),
				Reason:                  row.Field(8),
				ClinicalSummary:         row.Field(9),
				RequestedInvestigations: row.Field(10),
				Status:                  row.Field(11),
				AppointmentID:           row.Field(12),
				Notes:                   row.Field(13),
				CreatedDate:             row.Date(14),
				LastUpdated:             row.Date(15),
			}
		},
		Encode: func(r Referral) []string {
			return []string{
				r.ID, r.PatientID, r.ReferringClinicianID,
				r.ReferredToClinicianID, r.ReferringFacilityID,
				r.ReferredToFacilityID, record.FormatDate(r.Date),
				r.UrgencyLevel, r.Reason, r.ClinicalSummary,
				r.RequestedInvestigations, r.Status, r.AppointmentID,
				r.Notes, record.FormatDate(r.CreatedDate),
				record.FormatDate(r.LastUpdated),
			}
		},
	}
}
