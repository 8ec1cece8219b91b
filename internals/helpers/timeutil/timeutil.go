// file: internals/helpers/timeutil/timeutil.go
package timeutil

import "time"

// StartOfDay memotong jam/menit/detik, tetap di timezone t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween menghitung selisih hari kalender b - a (jam diabaikan).
// b kemarin → -1, b hari ini → 0, b besok → 1.
// Selisih dihitung atas tanggal yang di-anchor ulang ke UTC, bukan durasi
// wall-clock, supaya hari 23/25 jam saat transisi DST tidak menggeser hasil.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	au := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bu := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}

// AddMonths menambah n bulan kalender. Kalau tanggal asal melewati jumlah
// hari bulan tujuan, di-clamp ke hari terakhir bulan itu
// (31 Jan + 1 bulan = 28/29 Feb, bukan 2/3 Mar).
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	firstOfTarget := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := lastDayOfMonth(firstOfTarget); d > last {
		d = last
	}
	h, min, sec := t.Clock()
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, h, min, sec, t.Nanosecond(), t.Location())
}

func lastDayOfMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
