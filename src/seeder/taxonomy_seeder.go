package seeder

import (
	DB "Backend-RODO-Panel/src/database"
	"Backend-RODO-Panel/src/models"
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type seedArea struct {
	Name         string
	Description  string
	Requirements []string
}

type seedChapter struct {
	Name        string
	Description string
	Areas       []seedArea
}

// SeedTaxonomy loads the RODO questionnaire structure. Runs only against an
// empty chapters collection, so it is safe to call on every startup.
func SeedTaxonomy() error {
	ctx := context.Background()

	count, err := DB.ChapterCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("ℹ️ Taxonomy already seeded, skipping")
		return nil
	}

	for chapterIdx, chapter := range rodoTaxonomy {
		chapterDoc := models.Chapter{
			ID:          primitive.NewObjectID(),
			Name:        chapter.Name,
			Description: chapter.Description,
			OrderNumber: chapterIdx + 1,
		}
		if _, err := DB.ChapterCollection.InsertOne(ctx, chapterDoc); err != nil {
			return err
		}

		for areaIdx, area := range chapter.Areas {
			areaDoc := models.Area{
				ID:          primitive.NewObjectID(),
				Name:        area.Name,
				Description: area.Description,
				OrderNumber: areaIdx + 1,
				ChapterID:   chapterDoc.ID,
			}
			if _, err := DB.AreaCollection.InsertOne(ctx, areaDoc); err != nil {
				return err
			}

			var reqDocs []interface{}
			for reqIdx, text := range area.Requirements {
				reqDocs = append(reqDocs, models.Requirement{
					ID:          primitive.NewObjectID(),
					Text:        text,
					OrderNumber: reqIdx + 1,
					AreaID:      areaDoc.ID,
				})
			}
			if len(reqDocs) > 0 {
				if _, err := DB.RequirementCollection.InsertMany(ctx, reqDocs); err != nil {
					return err
				}
			}
		}
	}

	log.Printf("✅ Taxonomy seeded: %d chapters", len(rodoTaxonomy))
	return nil
}

// rodoTaxonomy mirrors the questionnaire the panel ships with.
var rodoTaxonomy = []seedChapter{
	{
		Name:        "Zasady ogólne",
		Description: "Ocena zgodności z ogólnymi zasadami RODO",
		Areas: []seedArea{
			{
				Name:        "Zgodność z prawem",
				Description: "Ocena zgodności z zasadą legalności przetwarzania",
				Requirements: []string{
					"Czy przetwarzanie danych osobowych odbywa się na podstawie co najmniej jednej z podstaw prawnych określonych w art. 6 RODO?",
					"Czy w przypadku przetwarzania szczególnych kategorii danych osobowych, spełnione są warunki określone w art. 9 RODO?",
					"Czy w przypadku przetwarzania danych dotyczących wyroków skazujących i czynów zabronionych, spełnione są warunki określone w art. 10 RODO?",
				},
			},
			{
				Name:        "Rzetelność i przejrzystość",
				Description: "Ocena zgodności z zasadą rzetelności i przejrzystości",
				Requirements: []string{
					"Czy osoby, których dane dotyczą, są informowane o przetwarzaniu ich danych w sposób przejrzysty, zrozumiały i łatwo dostępny?",
					"Czy informacje przekazywane osobom, których dane dotyczą, są sformułowane jasnym i prostym językiem?",
					"Czy administrator danych jest transparentny odnośnie do celów i zakresu przetwarzania danych?",
				},
			},
			{
				Name:        "Minimalizacja danych",
				Description: "Ocena zgodności z zasadą minimalizacji danych",
				Requirements: []string{
					"Czy przetwarzane są tylko te dane, które są niezbędne do osiągnięcia określonych celów?",
					"Czy zakres zbieranych danych jest adekwatny do celów przetwarzania?",
					"Czy istnieją procedury regularnego przeglądu zakresu zbieranych danych pod kątem ich niezbędności?",
				},
			},
			{
				Name:        "Prawidłowość danych",
				Description: "Ocena zgodności z zasadą prawidłowości danych",
				Requirements: []string{
					"Czy istnieją procedury zapewniające prawidłowość przetwarzanych danych?",
					"Czy dane są regularnie aktualizowane?",
					"Czy istnieją procedury usuwania lub korygowania nieprawidłowych danych?",
				},
			},
			{
				Name:        "Ograniczenie przechowywania",
				Description: "Ocena zgodności z zasadą ograniczenia przechowywania",
				Requirements: []string{
					"Czy określono okresy przechowywania danych dla różnych kategorii danych?",
					"Czy istnieją procedury regularnego przeglądu przechowywanych danych pod kątem ich dalszej przydatności?",
					"Czy istnieją procedury usuwania lub anonimizacji danych po upływie okresu ich przechowywania?",
				},
			},
			{
				Name:        "Integralność i poufność",
				Description: "Ocena zgodności z zasadą integralności i poufności",
				Requirements: []string{
					"Czy wdrożono odpowiednie środki techniczne i organizacyjne zapewniające bezpieczeństwo danych?",
					"Czy istnieją procedury regularnego testowania, mierzenia i oceniania skuteczności środków bezpieczeństwa?",
					"Czy pracownicy są regularnie szkoleni w zakresie bezpieczeństwa danych?",
				},
			},
		},
	},
	{
		Name:        "Podstawy przetwarzania",
		Description: "Ocena zgodności z podstawami prawnymi przetwarzania danych",
		Areas: []seedArea{
			{
				Name:        "Zgoda",
				Description: "Ocena zgodności z wymogami dotyczącymi zgody",
				Requirements: []string{
					"Czy zgoda jest wyrażana w sposób dobrowolny, konkretny, świadomy i jednoznaczny?",
					"Czy zgoda jest dokumentowana i przechowywana w sposób umożliwiający jej weryfikację?",
					"Czy istnieją procedury umożliwiające wycofanie zgody w dowolnym momencie?",
					"Czy w przypadku przetwarzania danych dzieci, zgoda jest uzyskiwana od rodziców lub opiekunów prawnych?",
				},
			},
			{
				Name:        "Umowa",
				Description: "Ocena zgodności z podstawą prawną umowy",
				Requirements: []string{
					"Czy przetwarzanie danych na podstawie umowy jest ograniczone do danych niezbędnych do wykonania umowy?",
					"Czy w przypadku przetwarzania danych przed zawarciem umowy, przetwarzanie jest ograniczone do działań niezbędnych do zawarcia umowy?",
				},
			},
			{
				Name:        "Obowiązek prawny",
				Description: "Ocena zgodności z podstawą prawną obowiązku prawnego",
				Requirements: []string{
					"Czy przetwarzanie danych na podstawie obowiązku prawnego jest ograniczone do zakresu wymaganego przez przepisy prawa?",
					"Czy istnieje dokumentacja identyfikująca konkretne przepisy prawa stanowiące podstawę przetwarzania?",
				},
			},
			{
				Name:        "Żywotne interesy",
				Description: "Ocena zgodności z podstawą prawną żywotnych interesów",
				Requirements: []string{
					"Czy przetwarzanie danych na podstawie żywotnych interesów jest stosowane tylko w wyjątkowych sytuacjach?",
					"Czy istnieje dokumentacja uzasadniająca przetwarzanie danych na podstawie żywotnych interesów?",
				},
			},
			{
				Name:        "Zadanie publiczne",
				Description: "Ocena zgodności z podstawą prawną zadania publicznego",
				Requirements: []string{
					"Czy przetwarzanie danych na podstawie zadania publicznego jest ograniczone do zakresu niezbędnego do wykonania tego zadania?",
					"Czy istnieje dokumentacja identyfikująca konkretne zadania publiczne stanowiące podstawę przetwarzania?",
				},
			},
			{
				Name:        "Prawnie uzasadniony interes",
				Description: "Ocena zgodności z podstawą prawną prawnie uzasadnionego interesu",
				Requirements: []string{
					"Czy przeprowadzono test równowagi interesów przed rozpoczęciem przetwarzania danych na podstawie prawnie uzasadnionego interesu?",
					"Czy istnieje dokumentacja uzasadniająca przetwarzanie danych na podstawie prawnie uzasadnionego interesu?",
					"Czy osoby, których dane dotyczą, są informowane o przetwarzaniu ich danych na podstawie prawnie uzasadnionego interesu?",
				},
			},
		},
	},
	{
		Name:        "Prawa osób",
		Description: "Ocena zgodności z prawami osób, których dane dotyczą",
		Areas: []seedArea{
			{
				Name:        "Prawo do informacji",
				Description: "Ocena zgodności z prawem do informacji",
				Requirements: []string{
					"Czy osoby, których dane dotyczą, są informowane o tożsamości i danych kontaktowych administratora?",
					"Czy osoby, których dane dotyczą, są informowane o celach przetwarzania i podstawie prawnej przetwarzania?",
					"Czy osoby, których dane dotyczą, są informowane o odbiorcach danych?",
					"Czy osoby, których dane dotyczą, są informowane o okresie przechowywania danych?",
					"Czy osoby, których dane dotyczą, są informowane o przysługujących im prawach?",
				},
			},
			{
				Name:        "Prawo dostępu",
				Description: "Ocena zgodności z prawem dostępu do danych",
				Requirements: []string{
					"Czy istnieją procedury umożliwiające osobom, których dane dotyczą, uzyskanie dostępu do ich danych?",
					"Czy osoby, których dane dotyczą, mogą uzyskać kopię przetwarzanych danych?",
					"Czy informacje o przetwarzaniu są przekazywane osobom, których dane dotyczą, w zwięzłej, przejrzystej, zrozumiałej i łatwo dostępnej formie?",
				},
			},
			{
				Name:        "Prawo do sprostowania",
				Description: "Ocena zgodności z prawem do sprostowania danych",
				Requirements: []string{
					"Czy istnieją procedury umożliwiające osobom, których dane dotyczą, sprostowanie nieprawidłowych danych?",
					"Czy istnieją procedury umożliwiające osobom, których dane dotyczą, uzupełnienie niekompletnych danych?",
					"Czy sprostowanie danych jest dokonywane bez zbędnej zwłoki?",
				},
			},
			{
				Name:        "Prawo do usunięcia",
				Description: "Ocena zgodności z prawem do usunięcia danych",
				Requirements: []string{
					"Czy istnieją procedury umożliwiające osobom, których dane dotyczą, usunięcie ich danych w określonych przypadkach?",
					"Czy usunięcie danych jest dokonywane bez zbędnej zwłoki?",
					"Czy w przypadku upublicznienia danych, podejmowane są rozsądne działania w celu poinformowania innych administratorów o żądaniu usunięcia danych?",
				},
			},
			{
				Name:        "Prawo do ograniczenia",
				Description: "Ocena zgodności z prawem do ograniczenia przetwarzania",
				Requirements: []string{
					"Czy istnieją procedury umożliwiające osobom, których dane dotyczą, ograniczenie przetwarzania ich danych w określonych przypadkach?",
					"Czy w przypadku ograniczenia przetwarzania, dane są przetwarzane wyłącznie za zgodą osoby, której dane dotyczą, lub w celu ustalenia, dochodzenia lub obrony roszczeń?",
					"Czy osoby, których dane dotyczą, są informowane przed zniesieniem ograniczenia przetwarzania?",
				},
			},
			{
				Name:        "Prawo do przenoszenia",
				Description: "Ocena zgodności z prawem do przenoszenia danych",
				Requirements: []string{
					"Czy istnieją procedury umożliwiające osobom, których dane dotyczą, otrzymanie ich danych w ustrukturyzowanym, powszechnie używanym formacie nadającym się do odczytu maszynowego?",
					"Czy istnieją procedury umożliwiające osobom, których dane dotyczą, przesłanie ich danych innemu administratorowi?",
					"Czy prawo do przenoszenia danych jest realizowane bez uszczerbku dla prawa do usunięcia danych?",
				},
			},
			{
				Name:        "Prawo do sprzeciwu",
				Description: "Ocena zgodności z prawem do sprzeciwu",
				Requirements: []string{
					"Czy istnieją procedury umożliwiające osobom, których dane dotyczą, wniesienie sprzeciwu wobec przetwarzania ich danych?",
					"Czy w przypadku wniesienia sprzeciwu, przetwarzanie danych jest zaprzestawane, chyba że istnieją ważne prawnie uzasadnione podstawy do przetwarzania?",
					"Czy osoby, których dane dotyczą, są informowane o prawie do sprzeciwu w sposób wyraźny i odrębny od innych informacji?",
				},
			},
		},
	},
}
