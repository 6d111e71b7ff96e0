// Copyright 2024 rollcall. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package rollcall-app-sheets reconciles classroom attendance logs against a spreadsheet gradebook.

rollcall-app-sheets is intended to be run once a week after a tutorial session: it takes the list
of usernames collected by the attendance bot, matches them against the student list in the gradebook
workbook and writes the per-session attendance scores back to the worksheet.

rollcall-app-sheets supports the following commands:

  - update, to reconcile a bot attendance log against the gradebook workbook and write back the scores
  - get, to download a gradebook worksheet from Google Sheets as a TSV file
  - put, to store a TSV file to a Google Sheets gradebook worksheet
  - authorise, to authorise application access to a Google Sheets worksheet
  - version, to display the application version
*/
package sheets
