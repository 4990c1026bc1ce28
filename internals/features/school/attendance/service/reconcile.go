package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/school/attendance/model"
)

/* =========================
   Reconcile: submitted sheet vs stored rows
========================= */

// SubmittedEntry is one row of a submitted attendance sheet. An empty
// Status means the teacher left that student blank.
type SubmittedEntry struct {
	StudentID uuid.UUID
	Status    string
	Notes     string
}

// Plan is the set of writes needed to make the stored records for one
// (class, date) match a submitted sheet. Applying an empty plan is a no-op,
// which is what makes resubmitting the same sheet idempotent.
type Plan struct {
	Creates []model.AttendanceRecordModel
	Updates []model.AttendanceRecordModel
	Skipped int
}

func (p Plan) Empty() bool {
	return len(p.Creates) == 0 && len(p.Updates) == 0
}

// BuildPlan compares submitted entries against the existing records for the
// date and decides what to write. Entries for students outside the roster
// and entries with an empty status are skipped; existing rows whose status
// and notes already match are left untouched. Every created or updated row
// is stamped with the recorder and the class context.
func BuildPlan(
	entries []SubmittedEntry,
	existing []model.AttendanceRecordModel,
	roster map[uuid.UUID]bool,
	classID uuid.UUID,
	date time.Time,
	recordedBy uuid.UUID,
) Plan {
	byStudent := make(map[uuid.UUID]model.AttendanceRecordModel, len(existing))
	for _, rec := range existing {
		byStudent[rec.AttendanceRecordStudentID] = rec
	}

	var plan Plan
	for _, e := range entries {
		if !roster[e.StudentID] {
			plan.Skipped++
			continue
		}
		if e.Status == "" || !model.ValidStatus(e.Status) {
			plan.Skipped++
			continue
		}

		status := model.AttendanceStatus(e.Status)
		cid := classID
		rid := recordedBy

		if rec, ok := byStudent[e.StudentID]; ok {
			if rec.AttendanceRecordStatus == status && rec.AttendanceRecordNotes == e.Notes {
				plan.Skipped++
				continue
			}
			rec.AttendanceRecordStatus = status
			rec.AttendanceRecordNotes = e.Notes
			rec.AttendanceRecordClassID = &cid
			rec.AttendanceRecordRecordedByUserID = &rid
			plan.Updates = append(plan.Updates, rec)
			continue
		}

		plan.Creates = append(plan.Creates, model.AttendanceRecordModel{
			AttendanceRecordStudentID:        e.StudentID,
			AttendanceRecordDate:             date,
			AttendanceRecordStatus:           status,
			AttendanceRecordNotes:            e.Notes,
			AttendanceRecordClassID:          &cid,
			AttendanceRecordRecordedByUserID: &rid,
		})
	}
	return plan
}

// ApplyPlan writes the plan inside a single transaction so a sheet is
// stored either completely or not at all.
func ApplyPlan(db *gorm.DB, plan Plan) error {
	if plan.Empty() {
		return nil
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if len(plan.Creates) > 0 {
			if err := tx.Create(&plan.Creates).Error; err != nil {
				return err
			}
		}
		for i := range plan.Updates {
			rec := plan.Updates[i]
			if err := tx.Model(&model.AttendanceRecordModel{}).
				Where("attendance_record_id = ?", rec.AttendanceRecordID).
				Updates(map[string]interface{}{
					"attendance_record_status":              rec.AttendanceRecordStatus,
					"attendance_record_notes":               rec.AttendanceRecordNotes,
					"attendance_record_class_id":            rec.AttendanceRecordClassID,
					"attendance_record_recorded_by_user_id": rec.AttendanceRecordRecordedByUserID,
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
