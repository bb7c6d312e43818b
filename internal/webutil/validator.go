// internal/webutil/validator.go
package webutil

import (
	"errors"
	"log"
	"reflect"
	"strings"

	"wordify/internal/model"

	"github.com/go-playground/locales/ja"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"email":            "メールアドレス",
	"username":         "ユーザー名",
	"first_name":       "名",
	"last_name":        "姓",
	"password":         "パスワード",
	"password_confirm": "パスワード（確認）",
	"current_password": "現在のパスワード",
	"new_password":     "新しいパスワード",
	"confirm_password": "新しいパスワード（確認）",
	"name":             "名前",
	"description":      "説明",
	"color":            "カラーコード",
	"word":             "単語",
	"pronunciation":    "発音",
	"meaning":          "意味",
	"example":          "例文",
	"difficulty":       "難易度",
	"topic_id":         "トピックID",
	"vocabulary_id":    "単語ID",
	"question_count":   "出題数",
	"questions":        "設問リスト",
	"time_spent":       "回答時間",
	"is_correct":       "回答の正誤",
	"action":           "操作",
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// 日本語のロケールとトランスレータを設定
	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// 個別のエラーメッセージを上書き・カスタマイズ
	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, translateFieldName(fe.Field()))
			return t
		})
	}

	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("email", "{0}は有効なメールアドレス形式ではありません。")
	registerTranslation("eqfield", "{0}が一致しません。")
	registerTranslation("oneof", "{0}に指定できない値が設定されています。")
	registerTranslation("hexcolor", "{0}は有効なカラーコードではありません。")

	// min / max はパラメータ({1})を含むため個別に登録する
	registerParamTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, translateFieldName(fe.Field()), fe.Param())
			return t
		})
	}

	registerParamTranslation("min", "{0}は{1}文字以上で入力してください。")
	registerParamTranslation("max", "{0}は{1}文字以下で入力してください。")
}

func translateFieldName(fieldName string) string {
	if translated, ok := fieldNameTranslations[fieldName]; ok {
		return translated
	}
	return fieldName
}

// ValidateStruct は共有バリデータで構造体を検証し、最初のエラーを
// 翻訳済みメッセージ付きの AppError にして返します。
func ValidateStruct(s interface{}) error {
	err := Validator.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		firstErr := validationErrors[0]
		return model.NewAppError(
			"VALIDATION_ERROR",
			firstErr.Translate(Trans),
			firstErr.Field(),
			model.ErrInvalidInput,
		)
	}

	// バリデーションライブラリ自体のエラーなど、予期せぬエラー
	return err
}
