package main

import (
	"errors"
	"log"

	"go-fabshop-api/internal/model"
	"go-fabshop-api/internal/repository"

	"gorm.io/gorm"
)

// Catalog the shop has carried since opening. New types are added through
// the API; this list only guarantees a fresh database is usable.
var defaultProductTypes = []string{
	"Zanzariera",
	"Riparazione Zanzariera",
	"Veneziana",
	"Tapparella",
	"Box Doccia",
	"Tenda a Rullo",
	"Tenda da Sole",
}

var defaultSubCategories = map[string][]string{
	"Zanzariera":             {"Molla", "Catena", "Jolly", "Telaio Fisso", "Battente", "A Kit"},
	"Riparazione Zanzariera": {"Molla", "Catena"},
	"Veneziana":              {"Alluminio", "Legno", "PVC"},
	"Tapparella":             {"PVC", "Alluminio", "Motorizzata"},
	"Box Doccia":             {"A Battente", "Scorrevole"},
	"Tenda a Rullo":          {"Interna", "Esterna"},
	"Tenda da Sole":          {"Cassonetto", "A Bracci"},
}

var defaultColors = []model.ColorIncrement{
	{Color: "Bianco", PercentIncrement: 0},
	{Color: "Nero", PercentIncrement: 5},
	{Color: "Rosso", PercentIncrement: 10},
}

// seedDefaults bootstraps the catalog, colors, the admin worker, a demo
// price list row and the default status vocabularies. Each insert is guarded
// by an existence check so restarts are harmless, and failures are logged
// without stopping startup (the API works on an empty catalog too).
func seedDefaults(db *gorm.DB) {
	productTypeRepo := repository.NewProductTypeRepo(db)
	subCategoryRepo := repository.NewSubCategoryRepo(db)
	colorRepo := repository.NewColorIncrementRepo(db)
	workerRepo := repository.NewWorkerRepo(db)
	priceListRepo := repository.NewPriceListRepo(db)
	workStatusRepo := repository.NewWorkStatusRepo(db)

	// 1. Product types
	for _, name := range defaultProductTypes {
		if _, err := productTypeRepo.FindByName(name); errors.Is(err, gorm.ErrRecordNotFound) {
			if err := productTypeRepo.Create(&model.ProductType{Name: name}); err != nil {
				log.Printf("Warning: failed to seed product type %q: %v", name, err)
			}
		}
	}

	// 2. Sub-categories
	for typeName, subs := range defaultSubCategories {
		pt, err := productTypeRepo.FindByName(typeName)
		if err != nil {
			continue
		}
		for _, subName := range subs {
			if _, err := subCategoryRepo.FindByTypeAndName(pt.ID, subName); errors.Is(err, gorm.ErrRecordNotFound) {
				sc := model.SubCategory{ProductTypeID: pt.ID, Name: subName}
				if err := subCategoryRepo.Create(&sc); err != nil {
					log.Printf("Warning: failed to seed sub-category %q/%q: %v", typeName, subName, err)
				}
			}
		}
	}

	// 3. Color increments
	for _, color := range defaultColors {
		if _, err := colorRepo.FindByColor(color.Color); errors.Is(err, gorm.ErrRecordNotFound) {
			c := color
			if err := colorRepo.Create(&c); err != nil {
				log.Printf("Warning: failed to seed color %q: %v", color.Color, err)
			}
		}
	}

	// 4. Default worker. Access codes are plaintext on purpose; see the
	// Worker model.
	if _, err := workerRepo.FindByUsername("admin"); errors.Is(err, gorm.ErrRecordNotFound) {
		admin := model.Worker{Username: "admin", AccessCode: "admin123"}
		if err := workerRepo.Create(&admin); err != nil {
			log.Printf("Warning: failed to seed admin worker: %v", err)
		} else {
			log.Println("Admin worker created: admin / admin123")
		}
	}

	// 5. Demo price list row for Zanzariera / Molla
	if pt, err := productTypeRepo.FindByName("Zanzariera"); err == nil {
		if sc, err := subCategoryRepo.FindByTypeAndName(pt.ID, "Molla"); err == nil {
			if _, err := priceListRepo.FindBasePrice(pt.ID, &sc.ID); errors.Is(err, gorm.ErrRecordNotFound) {
				customerID := uint(1)
				pl := model.PriceList{
					CustomerID:    &customerID,
					ProductTypeID: pt.ID,
					SubCategoryID: &sc.ID,
					PricePerSqm:   25.0,
				}
				if err := priceListRepo.Create(&pl); err != nil {
					log.Printf("Warning: failed to seed demo price list: %v", err)
				}
			}
		}
	}

	// 6. Default status vocabulary per product type
	for _, name := range defaultProductTypes {
		pt, err := productTypeRepo.FindByName(name)
		if err != nil {
			continue
		}
		existing, err := workStatusRepo.Find(&pt.ID, nil)
		if err != nil || len(existing) > 0 {
			continue
		}
		ws := model.WorkStatus{ProductTypeID: pt.ID, StatusList: model.DefaultStatusList}
		if err := workStatusRepo.Save(&ws); err != nil {
			log.Printf("Warning: failed to seed work statuses for %q: %v", name, err)
		}
	}
}
