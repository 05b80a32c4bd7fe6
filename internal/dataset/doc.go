// Package dataset loads the NBA salary table and answers filter queries over it.
//
// Load reads a delimited text file or an .xlsx workbook, cleans each row into
// a domain.PlayerSeason and drops rows that cannot be used:
//
//	team or position missing          -> missing_team / missing_position
//	salary missing                    -> missing_salary
//	salary not a non-negative number  -> invalid_salary
//
// A row whose year is missing or not an integer is kept with an unknown year
// and counted in LoadReport.InvalidYear; only the per-year view skips it.
//
// "Missing" means empty after trimming or one of the usual null markers
// (NaN, nan, NA, null, ...). Kept values are not trimmed. Salaries may carry
// "$" and thousands separators.
//
// A Dataset is immutable once built and safe for concurrent use.
package dataset
