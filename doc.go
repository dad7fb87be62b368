// Package debtservice estimates the annual debt-service burden of a slate of
// municipal capital projects. It is designed to run once a day, unattended,
// and leave an auditable trace of every estimate in a flat CSV log.
//
// The core functionalities include:
//   - Rate Acquisition: a long-term government bond yield is fetched from a
//     list of sources tried in priority order (see Resolver). When every
//     source fails a fallback rate is used, unless the resolver is strict.
//   - Amortization: a fixed municipal spread is added to the bond yield, and
//     every project is amortized with the standard fixed-payment annuity
//     formula (see Payment and Estimate).
//   - Ledger: each estimate is recorded as one CSV row, either overwriting
//     the log or appending to it with one row per day (see WriteLedger).
//
// The sources themselves live in sub packages (tradingecon, valet, yahoo),
// and the `dsc` command-line tool wires everything together.
package debtservice
