package repositories

import (
	"errors"
	"strings"

	"jobtracker_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SkillRepository interface {
	GetOrCreate(db *gorm.DB, name string) (*models.Skill, error)
	ReplaceJobSkills(db *gorm.DB, jobID string, names []string) error
}

type SkillRepositoryImpl struct{}

func NewSkillRepository() SkillRepository {
	return &SkillRepositoryImpl{}
}

// NormalizeSkill lowercases and trims a skill name.
func NormalizeSkill(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (r *SkillRepositoryImpl) GetOrCreate(db *gorm.DB, name string) (*models.Skill, error) {
	name = NormalizeSkill(name)

	var skill models.Skill
	err := db.Where("name = ?", name).First(&skill).Error
	if err == nil {
		return &skill, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// A concurrent insert of the same name is ignored and the stored row is read back.
	candidate := models.Skill{Name: name}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&candidate).Error; err != nil {
		return nil, err
	}
	if err := db.Where("name = ?", name).First(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

// ReplaceJobSkills drops every link of the job and recreates one per distinct name.
func (r *SkillRepositoryImpl) ReplaceJobSkills(db *gorm.DB, jobID string, names []string) error {
	if err := db.Where("job_id = ?", jobID).Delete(&models.JobSkill{}).Error; err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(names))
	for _, raw := range names {
		name := NormalizeSkill(raw)
		if _, dup := seen[name]; dup || name == "" {
			continue
		}
		seen[name] = struct{}{}

		skill, err := r.GetOrCreate(db, name)
		if err != nil {
			return err
		}
		if err := db.Create(&models.JobSkill{JobID: jobID, SkillID: skill.ID}).Error; err != nil {
			return err
		}
	}
	return nil
}
