// Package seed loads a starter set of sample recipes into an empty store.
package seed

import (
	"context"
	"fmt"

	"github.com/Eve04lim/recipe-manager-app/internal/service"
	"github.com/Eve04lim/recipe-manager-app/pkg/types"
)

// Drafts returns the sample recipe set. Fresh values on every call so
// callers can mutate freely.
func Drafts() []types.RecipeDraft {
	return []types.RecipeDraft{
		{
			Title:       "チキンカレー",
			Description: "スパイシーで濃厚なチキンカレーです。家族みんなが喜ぶ定番メニュー。",
			Servings:    4,
			PrepTime:    20,
			CookTime:    40,
			Difficulty:  2,
			Category:    types.CategoryStaple,
			Ingredients: []types.IngredientDraft{
				{Name: "鶏もも肉", Amount: 500, Unit: types.UnitGram, Notes: "一口大に切る"},
				{Name: "玉ねぎ", Amount: 2, Unit: types.UnitPiece, Notes: "みじん切り"},
				{Name: "にんじん", Amount: 1, Unit: types.UnitStick, Notes: "乱切り"},
				{Name: "じゃがいも", Amount: 3, Unit: types.UnitPiece, Notes: "一口大に切る"},
				{Name: "カレールー", Amount: 1, Unit: types.UnitPiece, Notes: "中辛"},
				{Name: "水", Amount: 800, Unit: types.UnitMilliliter},
				{Name: "サラダ油", Amount: 2, Unit: types.UnitTablespoon},
				{Name: "にんにく", Amount: 1, Unit: types.UnitPiece, Notes: "みじん切り"},
			},
			Steps: []types.StepDraft{
				{Description: "鶏もも肉を一口大に切り、野菜を準備します。"},
				{Description: "フライパンにサラダ油を熱し、にんにくと玉ねぎを炒めます。", Timer: 5},
				{Description: "鶏もも肉を加えて、表面に焼き色がつくまで炒めます。", Timer: 8},
				{Description: "にんじんとじゃがいもを加えて軽く炒め、水を加えて煮立たせます。"},
				{Description: "アクを取りながら中火で煮込みます。", Timer: 20},
				{Description: "一度火を止めてカレールーを加え、よく溶かして完成です。", Timer: 10},
			},
			Tags:   []string{"簡単", "家庭料理", "スパイシー", "人気"},
			Rating: 5,
			Notes:  "ルーを入れる前に一度火を止めるのがポイント",
		},
		{
			Title:       "シーザーサラダ",
			Description: "クリスピーなクルトンとパルメザンチーズが美味しいシーザーサラダです。",
			Servings:    2,
			PrepTime:    15,
			CookTime:    0,
			Difficulty:  1,
			Category:    types.CategorySalad,
			Ingredients: []types.IngredientDraft{
				{Name: "ロメインレタス", Amount: 1, Unit: types.UnitPiece, Notes: "一口大にちぎる"},
				{Name: "パルメザンチーズ", Amount: 50, Unit: types.UnitGram, Notes: "削る"},
				{Name: "クルトン", Amount: 50, Unit: types.UnitGram},
				{Name: "シーザードレッシング", Amount: 3, Unit: types.UnitTablespoon},
			},
			Steps: []types.StepDraft{
				{Description: "ロメインレタスをよく洗い、水気を切って一口大にちぎります。"},
				{Description: "ボウルにレタス、クルトン、パルメザンチーズを入れ、シーザードレッシングで和えて完成です。"},
			},
			Tags:       []string{"ヘルシー", "簡単", "洋食"},
			IsFavorite: true,
			Rating:     4,
		},
		{
			Title:       "チョコレートケーキ",
			Description: "濃厚で美味しいチョコレートケーキです。特別な日のデザートにぴったり。",
			Servings:    8,
			PrepTime:    30,
			CookTime:    45,
			Difficulty:  4,
			Category:    types.CategoryDessert,
			Ingredients: []types.IngredientDraft{
				{Name: "チョコレート", Amount: 200, Unit: types.UnitGram, Notes: "ダークチョコレート"},
				{Name: "バター", Amount: 100, Unit: types.UnitGram},
				{Name: "卵", Amount: 3, Unit: types.UnitPiece},
				{Name: "砂糖", Amount: 80, Unit: types.UnitGram},
				{Name: "薄力粉", Amount: 60, Unit: types.UnitGram},
			},
			Steps: []types.StepDraft{
				{Description: "オーブンを180℃に予熱し、型にバターを塗って粉を振っておきます。"},
				{Description: "チョコレートとバターを湯煎で溶かします。", Timer: 10},
				{Description: "卵と砂糖を白っぽくなるまで泡立て、溶かしたチョコレートを加えて混ぜます。", Timer: 8},
				{Description: "薄力粉をふるって加え、さっくりと混ぜ合わせます。"},
				{Description: "型に流し入れ、180℃のオーブンで45分焼きます。", Timer: 45},
			},
			Tags:   []string{"デザート", "チョコレート", "特別な日", "手作り"},
			Rating: 5,
			Notes:  "粉を入れた後は混ぜすぎないように注意",
		},
		{
			Title:       "パスタアラビアータ",
			Description: "ピリ辛のトマトソースが絶品のパスタです。",
			Servings:    2,
			PrepTime:    10,
			CookTime:    15,
			Difficulty:  2,
			Category:    types.CategoryItalian,
			Ingredients: []types.IngredientDraft{
				{Name: "パスタ", Amount: 200, Unit: types.UnitGram},
				{Name: "ホールトマト", Amount: 1, Unit: types.UnitPiece},
				{Name: "にんにく", Amount: 2, Unit: types.UnitPiece, Notes: "みじん切り"},
				{Name: "オリーブオイル", Amount: 3, Unit: types.UnitTablespoon},
				{Name: "唐辛子", Amount: 1, Unit: types.UnitStick},
			},
			Steps: []types.StepDraft{
				{Description: "パスタを茹でる準備をします。"},
				{Description: "にんにくと唐辛子をオリーブオイルで炒めます。", Timer: 3},
				{Description: "トマトソースを加えて煮込みます。", Timer: 10},
				{Description: "茹でたパスタと絡めて完成です。"},
			},
			Tags:       []string{"イタリアン", "パスタ", "ピリ辛", "簡単"},
			IsFavorite: true,
			Rating:     5,
		},
		{
			Title:       "グリーンスムージー",
			Description: "ヘルシーで栄養満点のグリーンスムージーです。朝食にぴったり！",
			Servings:    2,
			PrepTime:    5,
			CookTime:    0,
			Difficulty:  1,
			Category:    types.CategoryDrink,
			Ingredients: []types.IngredientDraft{
				{Name: "ほうれん草", Amount: 50, Unit: types.UnitGram},
				{Name: "バナナ", Amount: 1, Unit: types.UnitStick},
				{Name: "りんご", Amount: 1, Unit: types.UnitPiece},
				{Name: "水", Amount: 200, Unit: types.UnitMilliliter},
				{Name: "はちみつ", Amount: 1, Unit: types.UnitTablespoon},
			},
			Steps: []types.StepDraft{
				{Description: "フルーツと野菜をカットします。"},
				{Description: "すべての材料をミキサーに入れて撹拌します。", Timer: 2},
				{Description: "グラスに注いで完成です。"},
			},
			Tags:       []string{"ヘルシー", "スムージー", "朝食", "野菜", "フルーツ"},
			IsFavorite: true,
			Rating:     4,
			Notes:      "冷凍フルーツを使うとより冷たくて美味しい",
		},
	}
}

// Load adds the sample recipes to an empty store. A store that already
// holds recipes is left untouched and Load reports zero added.
func Load(ctx context.Context, svc *service.Service) (int, error) {
	count, err := svc.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	added := 0
	for _, draft := range Drafts() {
		if err := types.ValidateDraft(draft); err != nil {
			return added, fmt.Errorf("sample recipe %q: %w", draft.Title, err)
		}
		if _, err := svc.Add(ctx, draft); err != nil {
			return added, fmt.Errorf("sample recipe %q: %w", draft.Title, err)
		}
		added++
	}
	return added, nil
}
