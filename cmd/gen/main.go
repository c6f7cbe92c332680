package main

import (
	"academy/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.AccountModel{},
		model.UserInfoModel{},
		model.ManagerModel{},
		model.CoachModel{},
		model.CustomerModel{},
		model.LearnerModel{},
		model.StaffModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
