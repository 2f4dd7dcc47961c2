package playbook

import (
	"fmt"

	"github.com/michalbaturko-lang/bazarovyregal/internal/catalog"
	"github.com/michalbaturko-lang/bazarovyregal/internal/model"
)

type exampleData struct {
	common
	Example catalog.Example
}

// Examples builds the customer stories.
func Examples(c *catalog.Catalog) ([]model.ContentRecord, error) {
	out := make([]model.ContentRecord, 0, len(c.Examples))
	for _, ex := range c.Examples {
		rec := record(ex.Slug, ex.Title,
			fmt.Sprintf("%s %s Inspirujte se skutečným příkladem.", ex.Scenario, ex.Result),
			ex.Title, ex.Category, model.Examples)
		rec.FAQs = []model.FAQ{
			{Question: "Kolik takové řešení stojí?",
				Answer: fmt.Sprintf("Naše regály začínají na %d Kč za kus. Celková cena závisí na počtu a rozměrech regálů.", c.MinPrice(catalog.Filter{}))},
			{Question: "Jak dlouho trvala realizace?",
				Answer: "Samotná montáž jednoho regálu trvá 10 minut. Celá reorganizace obvykle zabere jeden víkend."},
			{Question: "Můžu postup zopakovat u sebe?",
				Answer: "Ano, postup je univerzální. Začněte změřením prostoru a roztříděním věcí, pak vyberte vhodné regály."},
		}
		data := exampleData{
			common:  newCommon(c, rec.Slug, c.Featured, rec.FAQs),
			Example: ex,
		}
		if err := fill(&rec, "examples", data); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
