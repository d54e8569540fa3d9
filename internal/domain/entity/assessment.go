package entity

import "time"

// Assessment is one health-intake submission. A user may have several; the
// copy embedded on User is the latest snapshot.
type Assessment struct {
	ID           string       `bson:"_id,omitempty" json:"id,omitempty"`
	UserID       string       `bson:"user_id,omitempty" json:"userId,omitempty"`
	Demographics Demographics `bson:"demographics" json:"demographics"`
	Lifestyle    Lifestyle    `bson:"lifestyle" json:"lifestyle"`
	Health       HealthFlags  `bson:"health" json:"health"`
	Objective    string       `bson:"objective" json:"objective"`
	CreatedAt    time.Time    `bson:"created_at" json:"createdAt"`
}

type Demographics struct {
	Age      int     `bson:"age" json:"age"`
	Gender   string  `bson:"gender" json:"gender"`
	HeightCm float64 `bson:"height_cm" json:"heightCm"`
	WeightKg float64 `bson:"weight_kg" json:"weightKg"`
}

type Lifestyle struct {
	ActivityLevel      string   `bson:"activity_level" json:"activityLevel"`
	SleepHours         float64  `bson:"sleep_hours" json:"sleepHours"`
	WaterLitersPerDay  float64  `bson:"water_liters_per_day" json:"waterLitersPerDay"`
	MealsPerDay        int      `bson:"meals_per_day" json:"mealsPerDay"`
	DietaryPreferences []string `bson:"dietary_preferences,omitempty" json:"dietaryPreferences,omitempty"`
}

type HealthFlags struct {
	Conditions  []string `bson:"conditions,omitempty" json:"conditions,omitempty"`
	Allergies   []string `bson:"allergies,omitempty" json:"allergies,omitempty"`
	Medications []string `bson:"medications,omitempty" json:"medications,omitempty"`
	Smoker      bool     `bson:"smoker" json:"smoker"`
	Pregnant    bool     `bson:"pregnant" json:"pregnant"`
}

// Snapshot returns a copy detached from the stored record's identity.
func (a *Assessment) Snapshot() *Assessment {
	if a == nil {
		return nil
	}
	cp := *a
	cp.ID = ""
	cp.UserID = ""
	return &cp
}
