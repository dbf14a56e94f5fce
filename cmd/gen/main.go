package main

import (
	"localhelp/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ProfileModel{},
		model.PostModel{},
		model.LostFoundItemModel{},
		model.RegisteredAddressModel{},
		model.ConversationModel{},
		model.UserRatingModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
