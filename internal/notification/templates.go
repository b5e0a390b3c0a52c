package notification

import (
	"fmt"
	"strings"

	"golf-lesson-booking/internal/data/entity"
	"golf-lesson-booking/internal/usecase"
)

func lessonDateLabel(rsv *entity.Reservation) string {
	return rsv.StartAt.Format("2006年1月2日 15:04")
}

func lessonSummary(rsv *entity.Reservation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "予約番号: %s\n", rsv.Code)
	fmt.Fprintf(&b, "レッスン: %s\n", rsv.PlanName)
	fmt.Fprintf(&b, "日時: %s〜%s\n", lessonDateLabel(rsv), rsv.EndAt.Format("15:04"))
	if rsv.Location != nil && *rsv.Location != "" {
		fmt.Fprintf(&b, "場所: %s\n", *rsv.Location)
	}
	if rsv.TeeOffTime != nil && *rsv.TeeOffTime != "" {
		fmt.Fprintf(&b, "ティーオフ: %s\n", *rsv.TeeOffTime)
	}
	fmt.Fprintf(&b, "料金: %d円\n", rsv.PlanPrice)

	return b.String()
}

func customerName(rsv *entity.Reservation) string {
	if rsv.UserName != nil && *rsv.UserName != "" {
		return *rsv.UserName
	}
	return rsv.UserEmail
}

func reservationRequestedMail(rsv *entity.Reservation) (string, string) {
	subject := fmt.Sprintf("【予約リクエスト受付】%s %s", lessonDateLabel(rsv), rsv.PlanName)

	var b strings.Builder
	fmt.Fprintf(&b, "%s 様\n\n", customerName(rsv))
	b.WriteString("以下のレッスンについて予約リクエストを受け付けました。\n")
	b.WriteString("確定まで今しばらくお待ちください。\n\n")
	b.WriteString(lessonSummary(rsv))
	if rsv.Concern != nil && *rsv.Concern != "" {
		fmt.Fprintf(&b, "\nご相談内容:\n%s\n", *rsv.Concern)
	}

	return subject, b.String()
}

func adminNewReservationMail(rsv *entity.Reservation) (string, string) {
	subject := fmt.Sprintf("【新規予約リクエスト】%s - %s", customerName(rsv), lessonDateLabel(rsv))

	var b strings.Builder
	b.WriteString("新しい予約リクエストが入りました。\n\n")
	fmt.Fprintf(&b, "お客様: %s (%s)\n", customerName(rsv), rsv.UserEmail)
	b.WriteString(lessonSummary(rsv))
	if rsv.Concern != nil && *rsv.Concern != "" {
		fmt.Fprintf(&b, "\nご相談内容:\n%s\n", *rsv.Concern)
	}

	return subject, b.String()
}

func reservationConfirmedMail(rsv *entity.Reservation) (string, string) {
	subject := fmt.Sprintf("【予約確定】%s %s", lessonDateLabel(rsv), rsv.PlanName)

	var b strings.Builder
	fmt.Fprintf(&b, "%s 様\n\n", customerName(rsv))
	b.WriteString("以下のレッスンの予約が確定しました。\n")
	b.WriteString("当日お会いできるのを楽しみにしております。\n\n")
	b.WriteString(lessonSummary(rsv))

	return subject, b.String()
}

func reservationRejectedMail(rsv *entity.Reservation) (string, string) {
	subject := fmt.Sprintf("【予約について】%s %s", lessonDateLabel(rsv), rsv.PlanName)

	var b strings.Builder
	fmt.Fprintf(&b, "%s 様\n\n", customerName(rsv))
	b.WriteString("申し訳ございませんが、以下の予約リクエストをお受けできませんでした。\n")
	b.WriteString("別の日程でのご予約をご検討ください。\n\n")
	b.WriteString(lessonSummary(rsv))
	if rsv.CancelReason != nil && *rsv.CancelReason != "" {
		fmt.Fprintf(&b, "\n理由:\n%s\n", *rsv.CancelReason)
	}

	return subject, b.String()
}

func adminCancellationRequestedMail(rsv *entity.Reservation, policy usecase.CancelPolicy) (string, string) {
	subject := fmt.Sprintf("【キャンセル申請】%s - %s", customerName(rsv), lessonDateLabel(rsv))

	var b strings.Builder
	b.WriteString("キャンセル申請が届きました。承認が必要です。\n\n")
	fmt.Fprintf(&b, "お客様: %s (%s)\n", customerName(rsv), rsv.UserEmail)
	b.WriteString(lessonSummary(rsv))
	fmt.Fprintf(&b, "\nキャンセル料: %d%% (%d円)\n", policy.FeePercent, policy.FeeAmount(rsv.PlanPrice))
	if rsv.CancelReason != nil && *rsv.CancelReason != "" {
		fmt.Fprintf(&b, "理由:\n%s\n", *rsv.CancelReason)
	}

	return subject, b.String()
}

func reservationCancelledMail(rsv *entity.Reservation) (string, string) {
	subject := fmt.Sprintf("【キャンセル完了】%s %s", lessonDateLabel(rsv), rsv.PlanName)

	var b strings.Builder
	fmt.Fprintf(&b, "%s 様\n\n", customerName(rsv))
	b.WriteString("以下のレッスンのキャンセルが完了しました。\n\n")
	b.WriteString(lessonSummary(rsv))
	if rsv.CancelTier != nil && *rsv.CancelTier != entity.CancelTierFree {
		b.WriteString("\nキャンセル料が発生します。金額は別途ご案内いたします。\n")
	}

	return subject, b.String()
}
